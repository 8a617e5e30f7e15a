package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickynotes/cmd/internal/utils"
)

func TestAdminMiddleware(t *testing.T) {
	secret := []byte("s3cr3t")
	valid, err := utils.IssueAdminToken(secret, "ops", time.Minute)
	require.NoError(t, err)

	plainUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &utils.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}).SignedString(secret)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{"valid superuser token", "Bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"tampered token", "Bearer " + valid + "x", http.StatusUnauthorized},
		{"non superuser", "Bearer " + plainUser, http.StatusForbidden},
	}

	mw := NewAdminMiddleware(&AdminMiddlewareConfig{Secret: secret})
	e := echo.New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/notes", http.NoBody)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := func(c echo.Context) error {
				admin, apierr := utils.GetAdminFromContext(c)
				if apierr != nil {
					return c.JSON(apierr.Code(), apierr)
				}
				return c.String(http.StatusOK, admin.Sub)
			}

			require.NoError(t, mw(handler)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "ops", rec.Body.String())
			}
		})
	}
}
