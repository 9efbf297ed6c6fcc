package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
)

type ActivityService struct {
	activityRepository repositories.ActivityRepositoryInterface
	logger             *zap.Logger
}

func NewActivityService(activityRepository repositories.ActivityRepositoryInterface, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		activityRepository: activityRepository,
		logger:             logger,
	}
}

// GetActivity lista la bitácora con los filtros opcionales. Un fallo de BD
// degrada a una lista vacía: la bitácora nunca rompe la página que la muestra.
func (s *ActivityService) GetActivity(ctx context.Context, q dto.ActivityQuery) *dto.ActivityListDTO {
	from, to := DayWindow(q.Date)

	entries, err := s.activityRepository.ListActivity(ctx, q.Search, q.Type, q.UserID, from, to)
	if err != nil {
		s.logger.Error("error al consultar la bitácora", zap.Error(err))
		return &dto.ActivityListDTO{Activities: []entities.ActivityLog{}}
	}
	if entries == nil {
		entries = []entities.ActivityLog{}
	}
	return &dto.ActivityListDTO{Activities: entries}
}

// DayWindow convierte YYYY-MM-DD en la ventana [día 00:00, día siguiente) en
// zona local. Una fecha vacía o mal formada no aplica ventana.
func DayWindow(date string) (*time.Time, *time.Time) {
	if date == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, nil
	}
	next := day.AddDate(0, 0, 1)
	return &day, &next
}
