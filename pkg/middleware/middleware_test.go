package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/finance-pilot-api/internal/config"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
	"github.com/vfg2006/finance-pilot-api/internal/usecases/authenticating"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if ok {
			w.Header().Set("X-User", claims.UserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	authenticator := authenticating.NewService(&config.Config{Auth: config.Auth{Secret: "segredo"}})

	validToken, err := authenticator.GenerateToken(&domain.Member{UserID: "user-1", OrgID: "org-1", RoleID: RoleMember}, time.Hour)
	assert.NoError(t, err)
	expiredToken, err := authenticator.GenerateToken(&domain.Member{UserID: "user-1"}, -time.Hour)
	assert.NoError(t, err)

	tests := []struct {
		name           string
		path           string
		header         string
		expectedStatus int
		expectedUser   string
	}{
		{name: "Healthcheck é público", path: "/healthcheck", expectedStatus: http.StatusOK},
		{name: "Sem header", path: "/v1/pilot/today", expectedStatus: http.StatusUnauthorized},
		{name: "Sem prefixo Bearer", path: "/v1/pilot/today", header: validToken, expectedStatus: http.StatusUnauthorized},
		{name: "Token expirado", path: "/v1/pilot/today", header: "Bearer " + expiredToken, expectedStatus: http.StatusUnauthorized},
		{name: "Token válido", path: "/v1/pilot/today", header: "Bearer " + validToken, expectedStatus: http.StatusOK, expectedUser: "user-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(authenticator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedUser, rec.Header().Get("X-User"))
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		middleware     func(http.Handler) http.Handler
		expectedStatus int
	}{
		{name: "Sem claims", middleware: AllRoles(), expectedStatus: http.StatusUnauthorized},
		{name: "Membro em rota comum", claims: &domain.Claims{UserID: "u", RoleID: RoleMember}, middleware: AllRoles(), expectedStatus: http.StatusOK},
		{name: "Membro em rota de admin", claims: &domain.Claims{UserID: "u", RoleID: RoleMember}, middleware: AdminOnly(), expectedStatus: http.StatusForbidden},
		{name: "Admin em rota de admin", claims: &domain.Claims{UserID: "u", RoleID: RoleAdmin}, middleware: AdminOnly(), expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLoggingMiddleware_PropagatesCorrelationID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(CorrelationIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	LoggingMiddleware()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCors(t *testing.T) {
	origins := []string{"http://localhost:3000/", " https://app.example.com "}

	tests := []struct {
		name           string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
	}{
		{name: "preflight de origem liberada", method: http.MethodOptions, origin: "http://localhost:3000", expectedStatus: http.StatusNoContent, expectedOrigin: "http://localhost:3000"},
		{name: "origem liberada com espaços na config", method: http.MethodGet, origin: "https://app.example.com", expectedStatus: http.StatusOK, expectedOrigin: "https://app.example.com"},
		{name: "origem desconhecida", method: http.MethodGet, origin: "https://evil.example.com", expectedStatus: http.StatusOK, expectedOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/pilot/today", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(origins)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
