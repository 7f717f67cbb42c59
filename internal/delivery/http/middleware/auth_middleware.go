package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "athletehub/internal/delivery/context"
	"athletehub/internal/delivery/http/response"
	domainerrors "athletehub/internal/domain/errors"
	"athletehub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and stores the athlete id on the context.
// The token is the second whitespace-separated field of the Authorization header;
// the scheme in the first field is not inspected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		fields := strings.Fields(c.Request().Header.Get(echo.HeaderAuthorization))
		if len(fields) < 2 {
			return response.AppError(c, domainerrors.ErrTokenMissing)
		}

		claims, err := m.tokenSvc.ValidateToken(fields[1])
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return response.AppError(c, domainerrors.ErrTokenInvalid)
		}

		deliverycontext.SetAthleteID(c, claims.AthleteID)

		return next(c)
	}
}
