package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"
)

const actorIDKey = "actor_id"

// ActorID devuelve el id del actor resuelto por ResolveActor; 0 significa
// solicitante anónimo.
func ActorID(ctx echo.Context) uint64 {
	if id, ok := ctx.Get(actorIDKey).(uint64); ok {
		return id
	}
	return 0
}

// ResolveActor lee X-User-Id (lo inyecta el proxy de autenticación) y verifica
// que el usuario exista. Sin cabecera la solicitud sigue como anónima; una
// cabecera inválida o un usuario inexistente cortan con 403.
func ResolveActor(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("X-User-Id")
			if header == "" {
				return next(ctx)
			}

			id, err := strconv.ParseUint(header, 10, 64)
			if err != nil {
				return utils.ErrorResponse(ctx,
					apperrors.NewHttpError(http.StatusForbidden, apperrors.ErrActorNotFound.Error(), err, nil),
					logger)
			}

			if _, err := userRepo.FindUser(ctx.Request().Context(), id); err != nil {
				if err == apperrors.ErrNotFound {
					return utils.ErrorResponse(ctx,
						apperrors.NewHttpError(http.StatusForbidden, apperrors.ErrActorNotFound.Error(), err, nil),
						logger)
				}
				return utils.ErrorResponse(ctx, err, logger)
			}

			ctx.Set(actorIDKey, id)
			return next(ctx)
		}
	}
}

// RequirePermission protege las rutas mutadoras de un módulo: el anónimo solo
// lee, y el resto pasa por la matriz de permisos (rol admin siempre pasa).
func RequirePermission(authorizer services.AuthorizerInterface, module string, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			action := actionForMethod(ctx.Request().Method)
			if action == "" {
				return next(ctx)
			}

			actorID := ActorID(ctx)
			if actorID == 0 {
				return utils.ErrorResponse(ctx,
					apperrors.NewHttpError(http.StatusForbidden, apperrors.ErrForbidden.Error(), nil, nil),
					logger)
			}

			allowed, err := authorizer.Can(ctx.Request().Context(), actorID, module, action)
			if err != nil {
				if err == apperrors.ErrActorNotFound {
					return utils.ErrorResponse(ctx,
						apperrors.NewHttpError(http.StatusForbidden, err.Error(), err, nil), logger)
				}
				return utils.ErrorResponse(ctx, err, logger)
			}
			if !allowed {
				logger.Warn("acción denegada por la matriz de permisos",
					zap.Uint64("actorID", actorID),
					zap.String("module", module),
					zap.String("action", action),
				)
				return utils.ErrorResponse(ctx,
					apperrors.NewHttpError(http.StatusForbidden, apperrors.ErrForbidden.Error(), nil, nil),
					logger)
			}

			return next(ctx)
		}
	}
}

func actionForMethod(method string) string {
	switch method {
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	default:
		return ""
	}
}
