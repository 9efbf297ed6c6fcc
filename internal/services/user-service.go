package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
)

type UserService struct {
	userRepository     repositories.UserRepositoryInterface
	activityRepository repositories.ActivityRepositoryInterface
	authorizer         AuthorizerInterface
	logger             *zap.Logger
}

func NewUserService(
	userRepository repositories.UserRepositoryInterface,
	activityRepository repositories.ActivityRepositoryInterface,
	authorizer AuthorizerInterface,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepository:     userRepository,
		activityRepository: activityRepository,
		authorizer:         authorizer,
		logger:             logger,
	}
}

func (s *UserService) GetUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		s.logger.Error("error al listar los usuarios", zap.Error(err))
		return nil, err
	}
	if users == nil {
		users = []entities.User{}
	}
	return users, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*entities.User, error) {
	return s.userRepository.FindUser(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, actorID uint64, in dto.CreateUserDTO) (*entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("error al generar el hash de la contraseña", zap.Error(err))
		return nil, err
	}

	estado := in.Estado
	if estado == "" {
		estado = "activo"
	}

	created, err := s.userRepository.CreateUser(ctx, entities.User{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		Estado:       estado,
		Permisos:     in.Permisos,
	})
	if err != nil {
		s.logger.Error("error al crear el usuario", zap.Error(err))
		return nil, err
	}

	s.recordActivity(ctx, actorID, entities.ActionCreate, created.ID,
		fmt.Sprintf("Usuario creado: %s", created.Email))
	return created, nil
}

// UpdateUser ignora id y fecha_creacion; la contraseña solo se rehashea si viene.
func (s *UserService) UpdateUser(ctx context.Context, actorID, id uint64, in dto.UpdateUserDTO) (*entities.User, error) {
	current, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Nombre != nil {
		current.Nombre = *in.Nombre
	}
	if in.Email != nil {
		current.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("error al generar el hash de la contraseña", zap.Error(err))
			return nil, err
		}
		current.PasswordHash = string(hash)
	}
	if in.Rol != nil {
		current.Rol = *in.Rol
	}
	if in.Estado != nil {
		current.Estado = *in.Estado
	}
	if in.Permisos != nil {
		current.Permisos = in.Permisos
	}

	updated, err := s.userRepository.UpdateUser(ctx, id, *current)
	if err != nil {
		return nil, err
	}

	// Los permisos cacheados del usuario pueden haber cambiado.
	if s.authorizer != nil {
		if err := s.authorizer.InvalidateUser(ctx, id); err != nil {
			s.logger.Warn("no se pudo invalidar el caché de permisos", zap.Uint64("id", id), zap.Error(err))
		}
	}

	s.recordActivity(ctx, actorID, entities.ActionUpdate, id,
		fmt.Sprintf("Usuario actualizado: %s", updated.Email))
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, actorID, id uint64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return err
	}

	if s.authorizer != nil {
		if err := s.authorizer.InvalidateUser(ctx, id); err != nil {
			s.logger.Warn("no se pudo invalidar el caché de permisos", zap.Uint64("id", id), zap.Error(err))
		}
	}

	s.recordActivity(ctx, actorID, entities.ActionDelete, id, fmt.Sprintf("Usuario eliminado (id %d)", id))
	return nil
}

func (s *UserService) recordActivity(ctx context.Context, actorID uint64, action string, id uint64, details string) {
	entry := entities.ActivityLog{
		UserID:    actorID,
		Action:    action,
		TableName: "users",
		RecordID:  fmt.Sprintf("%d", id),
		Details:   details,
	}
	if err := s.activityRepository.InsertActivity(ctx, entry); err != nil {
		s.logger.Warn("no se pudo registrar la actividad", zap.String("action", action), zap.Error(err))
	}
}
