package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-pilot-api/internal/api/handler"
	"github.com/vfg2006/finance-pilot-api/internal/api/handler/router"
	"github.com/vfg2006/finance-pilot-api/internal/config"
	"github.com/vfg2006/finance-pilot-api/internal/scheduler"
	"github.com/vfg2006/finance-pilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/finance-pilot-api/internal/usecases/pilot"
	"github.com/vfg2006/finance-pilot-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	pilotService pilot.PilotService,
	authenticator authenticating.Authenticator,
	warmupService *scheduler.PilotWarmupService,
	db handler.Pinger,
) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if warmupService != nil {
		cronServices[handler.CronJobTypePilotWarmup] = warmupService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Pilot(pilotService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	// O logging vem primeiro para que o correlation id chegue aos demais
	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Run serve até receber SIGINT/SIGTERM ou até ctx ser cancelado, e então desliga com prazo
func (s Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
			return err
		}
		return nil
	case <-ctx.Done():
		logrus.Info("Sinal de término recebido")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
