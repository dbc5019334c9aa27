package api_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/liberia-ecms/court-records-api/api"
	"github.com/liberia-ecms/court-records-api/models"
)

func signToken(t *testing.T, secret string, claims api.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/civil-dockets/my", nil)

	handler := api.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMiddlewareRejectsBadSignature(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	token := signToken(t, "some-other-secret", api.Claims{UserID: "abc", Role: models.RoleCircuitClerk})
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/civil-dockets/my", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	handler := api.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMiddlewareInjectsClaims(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	token := signToken(t, "test-secret", api.Claims{
		UserID:       "abc123",
		Role:         models.RoleCircuitClerk,
		CircuitCourt: "First Judicial Circuit",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/civil-dockets/my", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	var got *api.Claims
	handler := api.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := api.UserFromContext(r.Context())
		assert.True(t, ok)
		got = claims
	}))
	handler.ServeHTTP(rr, req)

	assert.NotNil(t, got)
	assert.Equal(t, "abc123", got.UserID)
	assert.Equal(t, models.RoleCircuitClerk, got.Role)
	assert.Equal(t, "First Judicial Circuit", got.CircuitCourt)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	token := signToken(t, "test-secret", api.Claims{
		UserID: "abc123",
		Role:   models.RoleCircuitClerk,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/civil-dockets/my", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	handler := api.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	called := false
	handler := api.RequireRole(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}), models.RoleCourtAdmin, models.RoleChiefJustice)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/events", nil)
	req = req.WithContext(api.ContextWithClaims(req.Context(), &api.Claims{Role: models.RoleChiefJustice}))
	handler.ServeHTTP(rr, req)

	assert.True(t, called)
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	handler := api.RequireRole(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}), models.RoleCourtAdmin)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/v1/civil-dockets/admin/clear-all", nil)
	req = req.WithContext(api.ContextWithClaims(req.Context(), &api.Claims{Role: models.RoleCircuitClerk}))
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
