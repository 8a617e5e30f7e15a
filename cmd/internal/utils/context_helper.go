package utils

import (
	"stickynotes/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const AdminContextKey = "admin"

func GetAdminFromContext(c echo.Context) (*TokenData, apierror.ErrorResponse) {
	val := c.Get(AdminContextKey)
	if val == nil {
		log.Warnf("route %s attempted to read nil admin from context", c.Request().URL)
		return nil, apierror.UnauthorizedError
	}

	admin, ok := val.(*TokenData)
	if !ok {
		log.Warnf("expected token data at '%s' context key, got %T", AdminContextKey, val)
		return nil, apierror.InternalServerError
	}
	return admin, nil
}
