// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-pilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-pilot-api/internal/config"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
	"github.com/vfg2006/finance-pilot-api/internal/usecases/pilot"
)

const defaultWarmupCron = "0 6 * * *"

type PilotWarmupConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// WarmupResult resume uma execução do aquecimento
type WarmupResult struct {
	Date        string        `json:"date"`
	Members     int           `json:"members"`
	Ready       int           `json:"ready"`
	Unavailable int           `json:"unavailable"`
	Duration    time.Duration `json:"duration"`
}

// PilotWarmupService cria de madrugada a recomendação do dia de cada membro ativo,
// para que a primeira abertura do app não pague o custo da coleta de sinais.
type PilotWarmupService struct {
	scheduler           *gocron.Scheduler
	config              PilotWarmupConfig
	userRepo            repository.UserRepository
	pilotService        pilot.PilotService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *WarmupResult
	ctx                 context.Context
}

func NewPilotWarmupService(
	userRepo repository.UserRepository,
	pilotService pilot.PilotService,
	cfg *config.Config,
) *PilotWarmupService {
	warmupConfig := PilotWarmupConfig{
		CronSchedule:      cfg.PilotWarmup.CronSchedule,
		MaxConcurrentJobs: cfg.PilotWarmup.MaxConcurrentJobs,
		SyncEnabled:       cfg.PilotWarmup.Enabled,
	}
	if warmupConfig.CronSchedule == "" {
		warmupConfig.CronSchedule = defaultWarmupCron
	}
	if warmupConfig.MaxConcurrentJobs < 1 {
		warmupConfig.MaxConcurrentJobs = 1
	}

	location := cfg.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       warmupConfig.CronSchedule,
		"max_concurrent_jobs": warmupConfig.MaxConcurrentJobs,
		"sync_enabled":        warmupConfig.SyncEnabled,
		"timezone":            location.String(),
	}).Info("Configuração do agendador de aquecimento do piloto carregada")

	return &PilotWarmupService{
		scheduler:    gocron.NewScheduler(location),
		config:       warmupConfig,
		userRepo:     userRepo,
		pilotService: pilotService,
		ctx:          context.Background(),
	}
}

func (s *PilotWarmupService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Aquecimento do piloto desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento do piloto")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.WarmUp(ctx); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento do piloto")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do piloto: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento do piloto")
		s.scheduler.Stop()
	}()

	return nil
}

// WarmUp devolve nil, nil quando já existe uma execução em andamento
func (s *PilotWarmupService) WarmUp(ctx context.Context) (*WarmupResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento do piloto já em andamento, ignorando")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	date := s.pilotService.Today()

	members, err := s.userRepo.ListActiveMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar membros ativos: %w", err)
	}

	result := &WarmupResult{
		Date:    date.Format(time.DateOnly),
		Members: len(members),
	}

	if len(members) == 0 {
		logrus.Info("Nenhum membro ativo para aquecimento do piloto")
	} else {
		result.Ready, result.Unavailable = s.warmUpMembers(ctx, members, date)
	}

	result.Duration = time.Since(startTime)

	s.syncMutex.Lock()
	s.lastResult = result
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"date":        result.Date,
		"members":     result.Members,
		"ready":       result.Ready,
		"unavailable": result.Unavailable,
		"duration":    result.Duration.String(),
	}).Info("Aquecimento do piloto concluído")

	return result, nil
}

func (s *PilotWarmupService) warmUpMembers(ctx context.Context, members []*domain.Member, date time.Time) (int, int) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	ready, unavailable := 0, 0

	for _, member := range members {
		if ctx.Err() != nil {
			logrus.Warn("Aquecimento do piloto interrompido pelo contexto")
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(m *domain.Member) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			recommendation, err := s.pilotService.GetOrCreateDailyRecommendation(ctx, m.UserID, m.OrgID, date)

			mu.Lock()
			defer mu.Unlock()

			if err != nil || recommendation == nil {
				unavailable++
				logrus.WithError(err).WithField("user_id", m.UserID).Warn("Recomendação indisponível no aquecimento")
				return
			}
			ready++
		}(member)
	}

	wg.Wait()

	return ready, unavailable
}

// TriggerManualSync dispara o aquecimento em background. Devolve false se já houver um rodando.
func (s *PilotWarmupService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento do piloto já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual do piloto")
	go func() {
		if _, err := s.WarmUp(s.ctx); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento manual do piloto")
		}
	}()

	return true
}

func (s *PilotWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
