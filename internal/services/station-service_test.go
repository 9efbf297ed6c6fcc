package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
)

func TestBuildEquipmentRows(t *testing.T) {
	t.Run("cpu-monitor con CPU y monitor produce exactamente dos filas", func(t *testing.T) {
		rows, err := BuildEquipmentRows(entities.StationCPUMonitor, dto.StationFormDTO{
			EquipoPrincipal:  "10",
			EquipoSecundario: "20",
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, entities.EquipmentRolePrimary, rows[0].EquipmentType)
		assert.Equal(t, uint64(10), rows[0].EquipmentID)
		assert.Equal(t, entities.EquipmentRoleSecondary, rows[1].EquipmentType)
		assert.Equal(t, uint64(20), rows[1].EquipmentID)
		assert.Equal(t, 1, rows[0].Cantidad)
	})

	t.Run("laptop ignora el slot secundario", func(t *testing.T) {
		rows, err := BuildEquipmentRows(entities.StationLaptop, dto.StationFormDTO{
			EquipoPrincipal:  "10",
			EquipoSecundario: "20",
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, entities.EquipmentRolePrimary, rows[0].EquipmentType)
	})

	t.Run("terciario none se omite", func(t *testing.T) {
		rows, err := BuildEquipmentRows(entities.StationImpresora, dto.StationFormDTO{
			EquipoPrincipal: "10",
			EquipoTercero:   "none",
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})

	t.Run("terciario con id genera fila", func(t *testing.T) {
		rows, err := BuildEquipmentRows(entities.StationCPUMonitor, dto.StationFormDTO{
			EquipoPrincipal: "10",
			EquipoTercero:   "30",
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, entities.EquipmentRoleTertiary, rows[1].EquipmentType)
	})

	t.Run("secundario y terciario sin principal se descartan", func(t *testing.T) {
		rows, err := BuildEquipmentRows(entities.StationCPUMonitor, dto.StationFormDTO{
			EquipoSecundario: "20",
			EquipoTercero:    "30",
		})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("sin slots no hay filas", func(t *testing.T) {
		rows, err := BuildEquipmentRows(entities.StationLaptop, dto.StationFormDTO{})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("id no numérico es error", func(t *testing.T) {
		_, err := BuildEquipmentRows(entities.StationLaptop, dto.StationFormDTO{EquipoPrincipal: "abc"})
		require.Error(t, err)
	})
}

func TestAccessoryRows(t *testing.T) {
	rows := accessoryRows(map[string]bool{
		"teclado":  true,
		"mouse":    true,
		"webcam":   false,
		"invalido": true, // un tipo desconocido no genera fila
	})

	require.Len(t, rows, 2)
	// Orden canónico: mouse antes que teclado.
	assert.Equal(t, "mouse", rows[0].AccessoryType)
	assert.Equal(t, "teclado", rows[1].AccessoryType)
	assert.True(t, rows[0].Included)
}

func TestProjectStationLaptop(t *testing.T) {
	interna := "Sala 2"
	st := &entities.Station{
		ID:          5,
		StationType: entities.StationLaptop,
		Status:      "active",
		Location: &entities.Location{
			Edificio:         "Edificio A",
			Planta:           "Planta 1",
			Servicio:         "Urgencias",
			UbicacionInterna: &interna,
		},
		Responsible: &entities.Responsible{NombreCompleto: "María López"},
		Equipment: []entities.StationEquipment{
			{
				EquipmentType: entities.EquipmentRolePrimary,
				Equipment: &entities.Equipment{
					Tipo: "LAPTOP", Marca: "Lenovo", Modelo: "L14", NumeroSerie: "D4",
				},
			},
		},
	}

	out, ok := ProjectStation(st).(dto.LaptopStationDTO)
	require.True(t, ok)
	assert.Equal(t, "LAPTOP", out.NombreEquipo)
	assert.Equal(t, "Lenovo", out.Marca)
	assert.Equal(t, "Sala 2", out.UbicacionInterna)
	assert.Equal(t, "María López", out.Responsable)
	assert.Equal(t, "Firmado", out.Resguardos)
	assert.Same(t, st, out.OriginalData)
}

func TestProjectStationLaptopSinDatos(t *testing.T) {
	st := &entities.Station{ID: 6, StationType: entities.StationLaptop, Status: "inactive"}

	out := ProjectStation(st).(dto.LaptopStationDTO)
	assert.Equal(t, "Laptop", out.NombreEquipo)
	assert.Equal(t, "Sin asignar", out.Marca)
	assert.Equal(t, "Sin asignar", out.Edificio)
	assert.Equal(t, "Sin asignar", out.Responsable)
	assert.Equal(t, "Pendiente", out.Resguardos)
}

func TestProjectStationImpresora(t *testing.T) {
	interna := "Mostrador"
	st := &entities.Station{
		ID:          7,
		StationType: entities.StationImpresora,
		Status:      "active",
		Location: &entities.Location{
			Servicio:         "Radiología",
			UbicacionInterna: &interna,
		},
		Equipment: []entities.StationEquipment{
			{
				EquipmentType: entities.EquipmentRolePrimary,
				Equipment: &entities.Equipment{
					Perfil:        strPtr("Informes"),
					TipoImpresora: strPtr("Láser"),
					Marca:         "Brother", Modelo: "HL", NumeroSerie: "I1",
				},
			},
		},
	}

	out, ok := ProjectStation(st).(dto.PrinterStationDTO)
	require.True(t, ok)
	assert.Equal(t, "Radiología Mostrador", out.Ubicacion)
	assert.Equal(t, "Radiología", out.Area)
	assert.Equal(t, "Informes", out.Perfil)
	assert.Equal(t, "Láser", out.TipoImpresora)
}

func TestProjectStationCPUMonitor(t *testing.T) {
	st := &entities.Station{
		ID:          8,
		StationType: entities.StationCPUMonitor,
		Status:      "active",
		Equipment: []entities.StationEquipment{
			{
				EquipmentType: entities.EquipmentRolePrimary,
				Equipment:     &entities.Equipment{Tipo: "CPU", Marca: "HP", Modelo: "ProDesk", NumeroSerie: "A1"},
			},
			{
				EquipmentType: entities.EquipmentRoleSecondary,
				Equipment:     &entities.Equipment{Tipo: "MONITOR", Marca: "Dell", Modelo: "P2419H", NumeroSerie: "B2"},
			},
		},
	}

	out, ok := ProjectStation(st).(dto.CPUMonitorStationDTO)
	require.True(t, ok)
	assert.Equal(t, "CPU", out.EquipoPrincipal)
	assert.Equal(t, "MONITOR", out.EquipoSecundario)
	assert.Equal(t, "B2", out.SerieSecundario)
	assert.Equal(t, "Sin asignar", out.Direccion)
}

// Un tipo de estación desconocido cae en la proyección cpu-monitor.
func TestProjectStationTipoDesconocido(t *testing.T) {
	st := &entities.Station{ID: 9, StationType: "otro", Status: "active"}
	_, ok := ProjectStation(st).(dto.CPUMonitorStationDTO)
	assert.True(t, ok)
}

func TestUpdateStationReemplazaEnlaces(t *testing.T) {
	var gotEquipment []entities.StationEquipment
	var gotAccessories []entities.StationAccessory

	repo := &fakeStationRepo{
		replace: func(ctx context.Context, id uint64, station entities.Station, equipment []entities.StationEquipment, accessories []entities.StationAccessory, logEntry entities.ActivityLog) (*entities.Station, error) {
			gotEquipment = equipment
			gotAccessories = accessories
			station.ID = id
			return &station, nil
		},
	}
	svc := NewStationService(repo, zap.NewNop())

	// Solo se reenvía el principal: el conjunto resultante debe ser
	// exactamente ese, sin rastro de enlaces anteriores.
	_, err := svc.UpdateStation(context.Background(), 2, 11, dto.SaveStationDTO{
		StationType: entities.StationCPUMonitor,
		FormData:    dto.StationFormDTO{EquipoPrincipal: "33"},
		Accessories: map[string]bool{"ups": true},
	})

	require.NoError(t, err)
	require.Len(t, gotEquipment, 1)
	assert.Equal(t, uint64(33), gotEquipment[0].EquipmentID)
	assert.Equal(t, entities.EquipmentRolePrimary, gotEquipment[0].EquipmentType)
	require.Len(t, gotAccessories, 1)
	assert.Equal(t, "ups", gotAccessories[0].AccessoryType)
}

func TestCreateStationPasaComposicion(t *testing.T) {
	var gotStation entities.Station
	var gotEquipment []entities.StationEquipment
	var gotAccessories []entities.StationAccessory
	var gotLog entities.ActivityLog

	repo := &fakeStationRepo{
		create: func(ctx context.Context, station entities.Station, equipment []entities.StationEquipment, accessories []entities.StationAccessory, logEntry entities.ActivityLog) (*entities.Station, error) {
			gotStation = station
			gotEquipment = equipment
			gotAccessories = accessories
			gotLog = logEntry
			station.ID = 11
			return &station, nil
		},
	}
	svc := NewStationService(repo, zap.NewNop())

	created, err := svc.CreateStation(context.Background(), 2, dto.SaveStationDTO{
		StationType: entities.StationCPUMonitor,
		FormData: dto.StationFormDTO{
			Direccion:        "PC-URG-01",
			Ubicacion:        "4",
			Responsable:      "none",
			EquipoPrincipal:  "10",
			EquipoSecundario: "20",
		},
		Accessories: map[string]bool{"mouse": true},
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(11), created.ID)
	assert.Equal(t, "active", gotStation.Status)
	require.NotNil(t, gotStation.LocationID)
	assert.Equal(t, uint64(4), *gotStation.LocationID)
	assert.Nil(t, gotStation.ResponsibleID)
	assert.Len(t, gotEquipment, 2)
	assert.Len(t, gotAccessories, 1)
	assert.Equal(t, entities.ActionCreate, gotLog.Action)
	assert.Equal(t, uint64(2), gotLog.UserID)
}
