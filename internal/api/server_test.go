package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/finance-pilot-api/internal/config"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
	"github.com/vfg2006/finance-pilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/finance-pilot-api/internal/usecases/pilot/mocks"
	"github.com/vfg2006/finance-pilot-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestServerRoutes(t *testing.T) {
	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   config.Auth{Secret: "segredo"},
	}
	authenticator := authenticating.NewService(cfg)

	memberToken, err := authenticator.GenerateToken(&domain.Member{UserID: "user-1", OrgID: "org-1", RoleID: middleware.RoleMember}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		setupMock      func(m *mocks.MockPilotService)
		expectedStatus int
	}{
		{
			name:           "healthcheck é público",
			method:         http.MethodGet,
			path:           "/healthcheck",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rota do piloto exige token",
			method:         http.MethodGet,
			path:           "/v1/pilot/today",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "membro consulta a recomendação do dia",
			method: http.MethodGet,
			path:   "/v1/pilot/today",
			token:  memberToken,
			setupMock: func(m *mocks.MockPilotService) {
				m.EXPECT().GetTodayRecommendation(gomock.Any(), "user-1", "org-1").
					Return(&domain.DailyRecommendation{ID: "rec-1", State: domain.PilotStateSafe}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "membro não dispara jobs",
			method:         http.MethodPost,
			path:           "/v1/cron/jobs/pilot-warmup/run",
			token:          memberToken,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "rota inexistente",
			method:         http.MethodGet,
			path:           "/v1/pilot/inexistente",
			token:          memberToken,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "preflight não passa pela autenticação",
			method:         http.MethodOptions,
			path:           "/v1/pilot/today",
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pilotService := mocks.NewMockPilotService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(pilotService)
			}

			srv, err := New(cfg, pilotService, authenticator, nil, nil)
			require.NoError(t, err)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", "http://localhost:3000")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			srv.httpServer.Handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
		})
	}
}
