package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
)

// AuthorizerInterface decide si un actor puede ejecutar una acción sobre un
// módulo según su matriz de permisos; rol admin pasa siempre.
type AuthorizerInterface interface {
	Can(ctx context.Context, userID uint64, module, action string) (bool, error)
	InvalidateUser(ctx context.Context, userID uint64) error
}

type cachedGrants struct {
	Rol      string                  `json:"rol"`
	Permisos entities.PermisosMatrix `json:"permisos"`
}

type Authorizer struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewAuthorizer(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) AuthorizerInterface {
	return &Authorizer{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func permisosCacheKey(userID uint64) string {
	return fmt.Sprintf("authz:permisos:user:%d", userID)
}

func (a *Authorizer) Can(ctx context.Context, userID uint64, module, action string) (bool, error) {
	grants, err := a.resolveGrants(ctx, userID)
	if err != nil {
		return false, err
	}
	if grants.Rol == "admin" {
		return true, nil
	}
	return grants.Permisos.Allows(module, action), nil
}

// resolveGrants intenta el caché primero y cae a la BD; el resultado de BD se
// vuelve a cachear con el TTL configurado.
func (a *Authorizer) resolveGrants(ctx context.Context, userID uint64) (*cachedGrants, error) {
	key := permisosCacheKey(userID)

	if cached, err := a.cacheRepo.Get(ctx, key); err == nil {
		var grants cachedGrants
		if err := json.Unmarshal([]byte(cached), &grants); err == nil {
			return &grants, nil
		}
		a.logger.Warn("entrada de permisos corrupta en caché", zap.String("key", key))
	}

	user, err := a.userRepo.FindUser(ctx, userID)
	if err != nil {
		if err == apperrors.ErrNotFound {
			return nil, apperrors.ErrActorNotFound
		}
		a.logger.Error("error al resolver los permisos del actor", zap.Uint64("userID", userID), zap.Error(err))
		return nil, err
	}

	grants := &cachedGrants{Rol: user.Rol, Permisos: user.Permisos}

	if payload, err := json.Marshal(grants); err == nil {
		if err := a.cacheRepo.Set(ctx, key, string(payload), a.cacheTTL); err != nil {
			a.logger.Warn("no se pudo cachear la matriz de permisos", zap.Uint64("userID", userID), zap.Error(err))
		}
	}
	return grants, nil
}

func (a *Authorizer) InvalidateUser(ctx context.Context, userID uint64) error {
	return a.cacheRepo.Del(ctx, permisosCacheKey(userID))
}
