package services

import (
	"context"
	"errors"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

var errCacheMiss = errors.New("cache: clave no encontrada")

// Dobles de prueba mínimos para los repositorios; cada campo func permite
// programar el comportamiento por caso.

type fakeEquipmentRepo struct {
	getWithAssignment func(ctx context.Context) ([]dto.EquipmentListItemDTO, error)
	getAll            func(ctx context.Context) ([]entities.Equipment, error)
	getAssignedIDs    func(ctx context.Context) (map[uint64]struct{}, error)
	find              func(ctx context.Context, id uint64) (*entities.Equipment, error)
	create            func(ctx context.Context, eq entities.Equipment) (*entities.Equipment, error)
	update            func(ctx context.Context, id uint64, eq entities.Equipment) (*entities.Equipment, error)
	delete            func(ctx context.Context, id uint64) error
	isAssigned        func(ctx context.Context, id uint64) (bool, error)
}

func (f *fakeEquipmentRepo) GetEquipmentWithAssignment(ctx context.Context) ([]dto.EquipmentListItemDTO, error) {
	return f.getWithAssignment(ctx)
}
func (f *fakeEquipmentRepo) GetAllEquipment(ctx context.Context) ([]entities.Equipment, error) {
	return f.getAll(ctx)
}
func (f *fakeEquipmentRepo) GetAssignedEquipmentIDs(ctx context.Context) (map[uint64]struct{}, error) {
	return f.getAssignedIDs(ctx)
}
func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	return f.find(ctx, id)
}
func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, eq entities.Equipment) (*entities.Equipment, error) {
	return f.create(ctx, eq)
}
func (f *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id uint64, eq entities.Equipment) (*entities.Equipment, error) {
	return f.update(ctx, id, eq)
}
func (f *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, id uint64) error {
	return f.delete(ctx, id)
}
func (f *fakeEquipmentRepo) IsAssigned(ctx context.Context, id uint64) (bool, error) {
	return f.isAssigned(ctx, id)
}

type fakeActivityRepo struct {
	list     func(ctx context.Context, search, action, userID string, from, to *time.Time) ([]entities.ActivityLog, error)
	recent   func(ctx context.Context, limit uint64) ([]entities.ActivityLog, error)
	inserted []entities.ActivityLog
	insert   func(ctx context.Context, entry entities.ActivityLog) error
}

func (f *fakeActivityRepo) ListActivity(ctx context.Context, search, action, userID string, from, to *time.Time) ([]entities.ActivityLog, error) {
	return f.list(ctx, search, action, userID, from, to)
}
func (f *fakeActivityRepo) GetRecentActivity(ctx context.Context, limit uint64) ([]entities.ActivityLog, error) {
	return f.recent(ctx, limit)
}
func (f *fakeActivityRepo) InsertActivity(ctx context.Context, entry entities.ActivityLog) error {
	f.inserted = append(f.inserted, entry)
	if f.insert != nil {
		return f.insert(ctx, entry)
	}
	return nil
}

type fakeStationRepo struct {
	getStations func(ctx context.Context) ([]entities.Station, error)
	find        func(ctx context.Context, id uint64) (*entities.Station, error)
	create      func(ctx context.Context, station entities.Station, equipment []entities.StationEquipment, accessories []entities.StationAccessory, logEntry entities.ActivityLog) (*entities.Station, error)
	replace     func(ctx context.Context, id uint64, station entities.Station, equipment []entities.StationEquipment, accessories []entities.StationAccessory, logEntry entities.ActivityLog) (*entities.Station, error)
	delete      func(ctx context.Context, id uint64, logEntry entities.ActivityLog) error
}

func (f *fakeStationRepo) GetStations(ctx context.Context) ([]entities.Station, error) {
	return f.getStations(ctx)
}
func (f *fakeStationRepo) FindStation(ctx context.Context, id uint64) (*entities.Station, error) {
	return f.find(ctx, id)
}
func (f *fakeStationRepo) CreateComposition(ctx context.Context, station entities.Station, equipment []entities.StationEquipment, accessories []entities.StationAccessory, logEntry entities.ActivityLog) (*entities.Station, error) {
	return f.create(ctx, station, equipment, accessories, logEntry)
}
func (f *fakeStationRepo) ReplaceComposition(ctx context.Context, id uint64, station entities.Station, equipment []entities.StationEquipment, accessories []entities.StationAccessory, logEntry entities.ActivityLog) (*entities.Station, error) {
	return f.replace(ctx, id, station, equipment, accessories, logEntry)
}
func (f *fakeStationRepo) DeleteStation(ctx context.Context, id uint64, logEntry entities.ActivityLog) error {
	return f.delete(ctx, id, logEntry)
}

type fakeLocationRepo struct {
	getLocations func(ctx context.Context, filter types.Filter) ([]entities.Location, error)
	find         func(ctx context.Context, id uint64) (*entities.Location, error)
	create       func(ctx context.Context, in dto.CreateLocationDTO) (*entities.Location, error)
	update       func(ctx context.Context, id uint64, in dto.UpdateLocationDTO) (*entities.Location, error)
	delete       func(ctx context.Context, id uint64) error
}

func (f *fakeLocationRepo) GetLocations(ctx context.Context, filter types.Filter) ([]entities.Location, error) {
	return f.getLocations(ctx, filter)
}
func (f *fakeLocationRepo) FindLocation(ctx context.Context, id uint64) (*entities.Location, error) {
	return f.find(ctx, id)
}
func (f *fakeLocationRepo) CreateLocation(ctx context.Context, in dto.CreateLocationDTO) (*entities.Location, error) {
	return f.create(ctx, in)
}
func (f *fakeLocationRepo) UpdateLocation(ctx context.Context, id uint64, in dto.UpdateLocationDTO) (*entities.Location, error) {
	return f.update(ctx, id, in)
}
func (f *fakeLocationRepo) DeleteLocation(ctx context.Context, id uint64) error {
	return f.delete(ctx, id)
}

type fakeDashboardRepo struct {
	countEquipment    func(ctx context.Context) (int64, error)
	countStations     func(ctx context.Context) (int64, error)
	countLocations    func(ctx context.Context) (int64, error)
	countResponsibles func(ctx context.Context) (int64, error)
	servicios         func(ctx context.Context) ([]*string, error)
	tipos             func(ctx context.Context) ([]*string, error)
}

func (f *fakeDashboardRepo) CountEquipment(ctx context.Context) (int64, error) {
	return f.countEquipment(ctx)
}
func (f *fakeDashboardRepo) CountStations(ctx context.Context) (int64, error) {
	return f.countStations(ctx)
}
func (f *fakeDashboardRepo) CountLocations(ctx context.Context) (int64, error) {
	return f.countLocations(ctx)
}
func (f *fakeDashboardRepo) CountResponsibles(ctx context.Context) (int64, error) {
	return f.countResponsibles(ctx)
}
func (f *fakeDashboardRepo) GetLocationServicios(ctx context.Context) ([]*string, error) {
	return f.servicios(ctx)
}
func (f *fakeDashboardRepo) GetEquipmentTipos(ctx context.Context) ([]*string, error) {
	return f.tipos(ctx)
}

type fakeUserRepo struct {
	users map[uint64]*entities.User
	err   error
}

func (f *fakeUserRepo) GetUsers(ctx context.Context) ([]entities.User, error) {
	return nil, f.err
}
func (f *fakeUserRepo) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, apperrors.ErrNotFound
}
func (f *fakeUserRepo) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	return &user, f.err
}
func (f *fakeUserRepo) UpdateUser(ctx context.Context, id uint64, user entities.User) (*entities.User, error) {
	return &user, f.err
}
func (f *fakeUserRepo) DeleteUser(ctx context.Context, id uint64) error {
	return f.err
}

type fakeCacheRepo struct {
	values map[string]string
	setErr error
	getErr error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{values: map[string]string{}}
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", errCacheMiss
}
func (f *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value.(string)
	return nil
}
func (f *fakeCacheRepo) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}
