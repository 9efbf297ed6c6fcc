package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
)

func TestDayWindow(t *testing.T) {
	t.Run("fecha válida abre la ventana del día", func(t *testing.T) {
		from, to := DayWindow("2025-03-10")
		require.NotNil(t, from)
		require.NotNil(t, to)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local), *from)
		assert.Equal(t, 24*time.Hour, to.Sub(*from))
	})

	t.Run("fecha vacía no aplica ventana", func(t *testing.T) {
		from, to := DayWindow("")
		assert.Nil(t, from)
		assert.Nil(t, to)
	})

	t.Run("fecha mal formada no aplica ventana", func(t *testing.T) {
		from, to := DayWindow("10/03/2025")
		assert.Nil(t, from)
		assert.Nil(t, to)
	})
}

func TestGetActivityPropagaFiltros(t *testing.T) {
	var gotSearch, gotAction, gotUser string
	var gotFrom, gotTo *time.Time

	repo := &fakeActivityRepo{
		list: func(ctx context.Context, search, action, userID string, from, to *time.Time) ([]entities.ActivityLog, error) {
			gotSearch, gotAction, gotUser = search, action, userID
			gotFrom, gotTo = from, to
			return []entities.ActivityLog{{ID: 1, Action: entities.ActionCreate}}, nil
		},
	}
	svc := NewActivityService(repo, zap.NewNop())

	out := svc.GetActivity(context.Background(), dto.ActivityQuery{
		Search: "urgencias",
		Type:   "create",
		UserID: "3",
		Date:   "2025-03-10",
	})

	require.Len(t, out.Activities, 1)
	assert.Equal(t, "urgencias", gotSearch)
	assert.Equal(t, "create", gotAction)
	assert.Equal(t, "3", gotUser)
	require.NotNil(t, gotFrom)
	require.NotNil(t, gotTo)
}

func TestGetActivityDegradaAVacio(t *testing.T) {
	repo := &fakeActivityRepo{
		list: func(ctx context.Context, search, action, userID string, from, to *time.Time) ([]entities.ActivityLog, error) {
			return nil, errors.New("conexión perdida")
		},
	}
	svc := NewActivityService(repo, zap.NewNop())

	out := svc.GetActivity(context.Background(), dto.ActivityQuery{})

	require.NotNil(t, out)
	assert.NotNil(t, out.Activities)
	assert.Empty(t, out.Activities)
}

func TestGetActivityNuncaDevuelveNil(t *testing.T) {
	repo := &fakeActivityRepo{
		list: func(ctx context.Context, search, action, userID string, from, to *time.Time) ([]entities.ActivityLog, error) {
			return nil, nil
		},
	}
	svc := NewActivityService(repo, zap.NewNop())

	out := svc.GetActivity(context.Background(), dto.ActivityQuery{})

	assert.NotNil(t, out.Activities)
	assert.Empty(t, out.Activities)
}
