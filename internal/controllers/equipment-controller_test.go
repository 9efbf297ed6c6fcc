package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/validation"
)

// Repositorios en memoria suficientes para ejercitar el controlador de punta a
// punta sin BD.

type stubEquipmentRepo struct {
	equipment map[uint64]*entities.Equipment
	assigned  map[uint64]struct{}
	nextID    uint64
}

func newStubEquipmentRepo() *stubEquipmentRepo {
	return &stubEquipmentRepo{
		equipment: map[uint64]*entities.Equipment{},
		assigned:  map[uint64]struct{}{},
		nextID:    1,
	}
}

func (r *stubEquipmentRepo) GetEquipmentWithAssignment(ctx context.Context) ([]dto.EquipmentListItemDTO, error) {
	items := []dto.EquipmentListItemDTO{}
	for _, eq := range r.equipment {
		items = append(items, dto.EquipmentListItemDTO{Equipment: *eq})
	}
	return items, nil
}
func (r *stubEquipmentRepo) GetAllEquipment(ctx context.Context) ([]entities.Equipment, error) {
	var all []entities.Equipment
	for _, eq := range r.equipment {
		all = append(all, *eq)
	}
	return all, nil
}
func (r *stubEquipmentRepo) GetAssignedEquipmentIDs(ctx context.Context) (map[uint64]struct{}, error) {
	return r.assigned, nil
}
func (r *stubEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	if eq, ok := r.equipment[id]; ok {
		return eq, nil
	}
	return nil, apperrors.ErrNotFound
}
func (r *stubEquipmentRepo) CreateEquipment(ctx context.Context, eq entities.Equipment) (*entities.Equipment, error) {
	eq.ID = r.nextID
	r.nextID++
	r.equipment[eq.ID] = &eq
	return &eq, nil
}
func (r *stubEquipmentRepo) UpdateEquipment(ctx context.Context, id uint64, eq entities.Equipment) (*entities.Equipment, error) {
	if _, ok := r.equipment[id]; !ok {
		return nil, apperrors.ErrNotFound
	}
	eq.ID = id
	r.equipment[id] = &eq
	return &eq, nil
}
func (r *stubEquipmentRepo) DeleteEquipment(ctx context.Context, id uint64) error {
	if _, ok := r.equipment[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.equipment, id)
	return nil
}
func (r *stubEquipmentRepo) IsAssigned(ctx context.Context, id uint64) (bool, error) {
	_, ok := r.assigned[id]
	return ok, nil
}

type stubActivityRepo struct {
	entries []entities.ActivityLog
}

func (r *stubActivityRepo) ListActivity(ctx context.Context, search, action, userID string, from, to *time.Time) ([]entities.ActivityLog, error) {
	return r.entries, nil
}
func (r *stubActivityRepo) GetRecentActivity(ctx context.Context, limit uint64) ([]entities.ActivityLog, error) {
	return r.entries, nil
}
func (r *stubActivityRepo) InsertActivity(ctx context.Context, entry entities.ActivityLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func newTestController(repo *stubEquipmentRepo) (*echo.Echo, *EquipmentController) {
	e := echo.New()
	e.Validator = validation.New()
	svc := services.NewEquipmentService(repo, &stubActivityRepo{}, zap.NewNop())
	return e, NewEquipmentController(svc, zap.NewNop())
}

func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateEquipmentHTTP(t *testing.T) {
	repo := newStubEquipmentRepo()
	e, ctrl := newTestController(repo)

	t.Run("alta correcta responde 201", func(t *testing.T) {
		ctx, rec := doJSON(e, http.MethodPost, "/api/equipment",
			`{"tipo":"cpu","marca":"HP","modelo":"ProDesk","numero_serie":"A1","estado":"disponible"}`)

		require.NoError(t, ctrl.CreateEquipment(ctx))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["status"])
		assert.Equal(t, "Equipo creado correctamente", resp["message"])
		require.Len(t, repo.equipment, 1)
		assert.Equal(t, "CPU", repo.equipment[1].Tipo)
	})

	t.Run("tipo fuera de catálogo es 400", func(t *testing.T) {
		ctx, rec := doJSON(e, http.MethodPost, "/api/equipment",
			`{"tipo":"tablet","marca":"HP","modelo":"X","numero_serie":"A2","estado":"disponible"}`)

		require.NoError(t, ctrl.CreateEquipment(ctx))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "tipo_equipo")
	})

	t.Run("tipo ausente es 400", func(t *testing.T) {
		ctx, rec := doJSON(e, http.MethodPost, "/api/equipment",
			`{"marca":"HP","modelo":"X","numero_serie":"A3","estado":"disponible"}`)

		require.NoError(t, ctrl.CreateEquipment(ctx))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("impresora sin perfil es 400", func(t *testing.T) {
		ctx, rec := doJSON(e, http.MethodPost, "/api/equipment",
			`{"tipo":"impresora","marca":"Brother","modelo":"HL","numero_serie":"A4","estado":"disponible"}`)

		require.NoError(t, ctrl.CreateEquipment(ctx))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cuerpo ilegible es 400", func(t *testing.T) {
		ctx, rec := doJSON(e, http.MethodPost, "/api/equipment", `{esto no es json`)

		require.NoError(t, ctrl.CreateEquipment(ctx))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Cuerpo de la solicitud inválido")
	})
}

func TestFindEquipmentHTTP(t *testing.T) {
	repo := newStubEquipmentRepo()
	repo.equipment[1] = &entities.Equipment{ID: 1, Tipo: "CPU", Marca: "HP", Modelo: "ProDesk", NumeroSerie: "A1", Estado: "disponible"}
	repo.nextID = 2
	e, ctrl := newTestController(repo)

	t.Run("existente responde 200", func(t *testing.T) {
		ctx, rec := doJSON(e, http.MethodGet, "/api/equipment/1", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("1")

		require.NoError(t, ctrl.FindEquipment(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("inexistente responde 404", func(t *testing.T) {
		ctx, rec := doJSON(e, http.MethodGet, "/api/equipment/9", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("9")

		require.NoError(t, ctrl.FindEquipment(ctx))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Equipo no encontrado")
	})

	t.Run("id no numérico responde 400", func(t *testing.T) {
		ctx, rec := doJSON(e, http.MethodGet, "/api/equipment/abc", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("abc")

		require.NoError(t, ctrl.FindEquipment(ctx))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "ID inválido")
	})
}

func TestDeleteEquipmentHTTP(t *testing.T) {
	repo := newStubEquipmentRepo()
	repo.equipment[1] = &entities.Equipment{ID: 1, Tipo: "MONITOR", Marca: "Dell", Modelo: "P2419H", NumeroSerie: "B1", Estado: "disponible"}
	repo.assigned[1] = struct{}{}
	e, ctrl := newTestController(repo)

	ctx, rec := doJSON(e, http.MethodDelete, "/api/equipment/1", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("1")

	require.NoError(t, ctrl.DeleteEquipment(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, repo.equipment, uint64(1), "el equipo asignado debe seguir en el inventario")
}

func TestGetAvailableEquipmentHTTP(t *testing.T) {
	repo := newStubEquipmentRepo()
	repo.equipment[1] = &entities.Equipment{ID: 1, Tipo: "CPU", Marca: "HP", Modelo: "ProDesk", NumeroSerie: "A1", Estado: "disponible"}
	repo.equipment[2] = &entities.Equipment{ID: 2, Tipo: "MONITOR", Marca: "Dell", Modelo: "P2419H", NumeroSerie: "B2", Estado: "dañado"}
	e, ctrl := newTestController(repo)

	ctx, rec := doJSON(e, http.MethodGet, "/api/equipment/available?stationType=cpu-monitor", "")

	require.NoError(t, ctrl.GetAvailableEquipment(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Body dto.AvailableEquipmentResponseDTO `json:"body"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Body.Equipment, 1)
	assert.Equal(t, uint64(1), resp.Body.Equipment[0].ID)
	assert.Equal(t, 2, resp.Body.Debug.TotalEquipment)
}
