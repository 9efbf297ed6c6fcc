package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
)

func TestDistribution(t *testing.T) {
	urgencias := "Urgencias"
	radiologia := "Radiología"
	empty := ""

	dist := Distribution([]*string{&urgencias, &urgencias, &radiologia, nil, &empty}, "Sin servicio")

	assert.Equal(t, 2, dist["Urgencias"])
	assert.Equal(t, 1, dist["Radiología"])
	assert.Equal(t, 2, dist["Sin servicio"])
	assert.Len(t, dist, 3)
}

func TestDistributionVacia(t *testing.T) {
	dist := Distribution(nil, "Otros")
	assert.NotNil(t, dist)
	assert.Empty(t, dist)
}

func healthyDashboardRepo() *fakeDashboardRepo {
	cpu := "CPU"
	monitor := "MONITOR"
	urgencias := "Urgencias"
	return &fakeDashboardRepo{
		countEquipment:    func(ctx context.Context) (int64, error) { return 12, nil },
		countStations:     func(ctx context.Context) (int64, error) { return 4, nil },
		countLocations:    func(ctx context.Context) (int64, error) { return 6, nil },
		countResponsibles: func(ctx context.Context) (int64, error) { return 3, nil },
		servicios:         func(ctx context.Context) ([]*string, error) { return []*string{&urgencias, nil}, nil },
		tipos:             func(ctx context.Context) ([]*string, error) { return []*string{&cpu, &cpu, &monitor}, nil },
	}
}

func TestGetSummary(t *testing.T) {
	activity := &fakeActivityRepo{
		recent: func(ctx context.Context, limit uint64) ([]entities.ActivityLog, error) {
			assert.Equal(t, uint64(5), limit)
			return []entities.ActivityLog{{ID: 9}}, nil
		},
	}
	svc := NewDashboardService(healthyDashboardRepo(), activity, zap.NewNop())

	out := svc.GetSummary(context.Background())

	assert.Equal(t, int64(12), out.TotalEquipment)
	assert.Equal(t, int64(4), out.TotalStations)
	assert.Equal(t, int64(6), out.TotalLocations)
	assert.Equal(t, int64(3), out.TotalResponsibles)
	assert.Equal(t, 1, out.LocationDistribution["Urgencias"])
	assert.Equal(t, 1, out.LocationDistribution["Sin servicio"])
	assert.Equal(t, 2, out.EquipmentStatus["CPU"])
	require.Len(t, out.RecentActivity, 1)
}

func TestGetSummaryCaeATodoEnCeros(t *testing.T) {
	repo := healthyDashboardRepo()
	repo.countStations = func(ctx context.Context) (int64, error) {
		return 0, errors.New("timeout")
	}
	svc := NewDashboardService(repo, &fakeActivityRepo{}, zap.NewNop())

	out := svc.GetSummary(context.Background())

	require.NotNil(t, out)
	assert.Zero(t, out.TotalEquipment)
	assert.Zero(t, out.TotalStations)
	assert.NotNil(t, out.LocationDistribution)
	assert.NotNil(t, out.RecentActivity)
	assert.Empty(t, out.RecentActivity)
}

func TestGetSummaryFalloEnActividad(t *testing.T) {
	activity := &fakeActivityRepo{
		recent: func(ctx context.Context, limit uint64) ([]entities.ActivityLog, error) {
			return nil, errors.New("tabla bloqueada")
		},
	}
	svc := NewDashboardService(healthyDashboardRepo(), activity, zap.NewNop())

	out := svc.GetSummary(context.Background())

	assert.Zero(t, out.TotalEquipment)
	assert.Empty(t, out.RecentActivity)
}
