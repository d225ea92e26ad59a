package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/finance-pilot-api/infrastructure/migration"
	"github.com/vfg2006/finance-pilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-pilot-api/internal/api"
	"github.com/vfg2006/finance-pilot-api/internal/config"
	"github.com/vfg2006/finance-pilot-api/internal/scheduler"
	"github.com/vfg2006/finance-pilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/finance-pilot-api/internal/usecases/pilot"
	"github.com/vfg2006/finance-pilot-api/pkg/log"
)

func main() {
	// O .env é procurado a partir do diretório do binário
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.MigrateOnStart {
		if err := migration.Up(ctx, pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	userRepo := repository.NewUserRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)
	financialAccountRepo := repository.NewFinancialAccountRepository(pgConn)
	checkinRepo := repository.NewEmotionalCheckinRepository(pgConn)
	recommendationRepo := repository.NewDailyRecommendationRepository(pgConn)
	pointsLedgerRepo := repository.NewPointsLedgerRepository(pgConn)

	thresholds := pilot.ThresholdsFromConfig(cfg.Pilot)

	collector := pilot.NewCollector(
		transactionRepo,
		financialAccountRepo,
		checkinRepo,
		recommendationRepo,
		thresholds,
	)

	pilotService := pilot.NewService(
		recommendationRepo,
		checkinRepo,
		collector,
		pilot.NewFeedbackTrigger(pointsLedgerRepo),
		thresholds,
		pilot.WithLocation(cfg.App.Location),
	)

	authenticator := authenticating.NewService(cfg)

	warmupService := scheduler.NewPilotWarmupService(userRepo, pilotService, cfg)
	if err := warmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do piloto")
	} else {
		logrus.Info("Agendador de aquecimento do piloto iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pilotService,
		authenticator,
		warmupService,
		pgConn,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
