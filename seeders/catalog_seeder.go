package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

type demoLocation struct {
	Edificio         string
	Planta           string
	Servicio         string
	UbicacionInterna string
}

type demoResponsible struct {
	NombreCompleto string
	Cargo          string
	Email          string
	Telefono       string
}

type demoEquipment struct {
	Nombre        string
	Tipo          string
	Perfil        string
	TipoImpresora string
	Marca         string
	Modelo        string
	NumeroSerie   string
	Estado        string
}

var demoLocations = []demoLocation{
	{"Edificio A", "Planta 1", "Urgencias", "Box 3"},
	{"Edificio A", "Planta 2", "Pediatría", "Control de enfermería"},
	{"Edificio B", "Planta 1", "Radiología", "Sala de informes"},
	{"Edificio B", "Planta 3", "Administración", "Despacho 12"},
}

var demoResponsibles = []demoResponsible{
	{"María López García", "Supervisora de enfermería", "mlopez@hospital.local", "600111222"},
	{"Jorge Ramírez Peña", "Jefe de servicio", "jramirez@hospital.local", "600333444"},
	{"Ana Torres Vidal", "Administrativa", "atorres@hospital.local", ""},
}

var demoEquipmentRows = []demoEquipment{
	{"PC Urgencias 1", "CPU", "", "", "HP", "ProDesk 400 G7", "CPU-0001", "disponible"},
	{"", "MONITOR", "", "", "Dell", "P2419H", "MON-0001", "disponible"},
	{"", "MONITOR", "", "", "Dell", "P2422H", "MON-0002", "disponible"},
	{"Portátil guardias", "LAPTOP", "", "", "Lenovo", "ThinkPad L14", "LAP-0001", "disponible"},
	{"", "IMPRESORA", "Etiquetas", "Térmica", "Zebra", "ZD421", "IMP-0001", "disponible"},
	{"", "IMPRESORA", "Informes", "Láser", "Brother", "HL-L5100DN", "IMP-0002", "mantenimiento"},
	{"", "CPU", "", "", "HP", "ProDesk 400 G6", "CPU-0002", "dañado"},
}

func seedLocations(ctx context.Context, db *pgxpool.Pool) error {
	for _, loc := range demoLocations {
		var exists bool
		err := db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM locations WHERE edificio = $1 AND planta = $2 AND servicio = $3)`,
			loc.Edificio, loc.Planta, loc.Servicio,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		_, err = db.Exec(ctx, `
			INSERT INTO locations (edificio, planta, servicio, ubicacion_interna)
			VALUES ($1, $2, $3, NULLIF($4, ''))`,
			loc.Edificio, loc.Planta, loc.Servicio, loc.UbicacionInterna,
		)
		if err != nil {
			return fmt.Errorf("insertando ubicación %s/%s: %w", loc.Edificio, loc.Servicio, err)
		}
	}
	log.Printf("  - Ubicaciones: %d filas de referencia", len(demoLocations))
	return nil
}

func seedResponsibles(ctx context.Context, db *pgxpool.Pool) error {
	for _, resp := range demoResponsibles {
		var exists bool
		err := db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM responsibles WHERE nombre_completo = $1)`,
			resp.NombreCompleto,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		_, err = db.Exec(ctx, `
			INSERT INTO responsibles (nombre_completo, cargo, email, telefono)
			VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))`,
			resp.NombreCompleto, resp.Cargo, resp.Email, resp.Telefono,
		)
		if err != nil {
			return fmt.Errorf("insertando responsable %s: %w", resp.NombreCompleto, err)
		}
	}
	log.Printf("  - Responsables: %d filas de referencia", len(demoResponsibles))
	return nil
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	for _, eq := range demoEquipmentRows {
		var exists bool
		err := db.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM equipment WHERE numero_serie = $1)`, eq.NumeroSerie,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		_, err = db.Exec(ctx, `
			INSERT INTO equipment (nombre, tipo, perfil, tipo_impresora, marca, modelo, numero_serie, estado)
			VALUES (NULLIF($1, ''), $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6, $7, $8)`,
			eq.Nombre, eq.Tipo, eq.Perfil, eq.TipoImpresora, eq.Marca, eq.Modelo, eq.NumeroSerie, eq.Estado,
		)
		if err != nil {
			return fmt.Errorf("insertando equipo %s: %w", eq.NumeroSerie, err)
		}
	}
	log.Printf("  - Equipos: %d filas de referencia", len(demoEquipmentRows))
	return nil
}
