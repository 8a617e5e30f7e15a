package middleware

import (
	"errors"
	"net/http"
	"stickynotes/cmd/internal/utils"
	"stickynotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type AdminMiddlewareConfig struct {
	Secret []byte
}

// NewAdminMiddleware only lets requests carrying a valid superuser token
// through, storing the token data under utils.AdminContextKey.
func NewAdminMiddleware(cfg *AdminMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(c, cfg.Secret)
			if errors.Is(err, utils.ErrNotSuperuser) {
				return c.JSON(http.StatusForbidden, apierror.ForbiddenError)
			}

			if err != nil {
				log.Debugf("rejected admin request to %s: %v", c.Request().URL.Path, err)
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			c.Set(utils.AdminContextKey, tokenData)
			return next(c)
		}
	}
}
