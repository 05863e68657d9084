package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newProtectedApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append([]fiber.Handler{JWTProtected(testSecret)}, handlers...)
	chain = append(chain, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   c.Locals("user_id"),
			"user_role": c.Locals("user_role"),
		})
	})
	app.Get("/protected", chain...)
	return app
}

func request(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestJWTProtectedRejectsMissingHeader(t *testing.T) {
	app := newProtectedApp()

	resp := request(t, app, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, "Basic abc")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsBadSignature(t *testing.T) {
	app := newProtectedApp()

	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "t001",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	resp := request(t, app, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedRejectsExpiredToken(t *testing.T) {
	app := newProtectedApp()

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "t001",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	resp := request(t, app, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTProtectedBindsClaims(t *testing.T) {
	var boundID, boundRole string
	app := newProtectedApp(func(c *fiber.Ctx) error {
		boundID, _ = c.Locals("user_id").(string)
		boundRole, _ = c.Locals("user_role").(string)
		return c.Next()
	})

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "t001",
		"role": "Teacher",
		"name": "Dr. Johnson",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	resp := request(t, app, "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "t001", boundID)
	// roles are normalised to lower case
	require.Equal(t, "teacher", boundRole)
}

func TestRequireRole(t *testing.T) {
	app := newProtectedApp(RequireRole("teacher"))

	teacher := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "t001",
		"role": "teacher",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	resp := request(t, app, "Bearer "+teacher)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	student := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "s001",
		"role": "student",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	resp = request(t, app, "Bearer "+student)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleWithoutAuthenticatedRole(t *testing.T) {
	app := fiber.New()
	app.Get("/teacher-only", RequireRole("teacher"), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/teacher-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
