package pilot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/finance-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/finance-pilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
	"github.com/vfg2006/finance-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/finance-pilot-api/pkg/log"
	"github.com/vfg2006/finance-pilot-api/pkg/utils"
)

const (
	DefaultHistoryLimit = 30
	MaxHistoryLimit     = 60

	dateSlackDays = 1
)

var validate = validator.New()

type PilotService interface {
	// GetOrCreateDailyRecommendation devolve nil, nil para data passada sem linha gravada
	GetOrCreateDailyRecommendation(ctx context.Context, userID, orgID string, date time.Time) (*domain.DailyRecommendation, error)
	GetTodayRecommendation(ctx context.Context, userID, orgID string) (*domain.DailyRecommendation, error)
	SaveEmotionalCheckin(ctx context.Context, userID string, date time.Time, value string) (bool, error)
	ListHistory(ctx context.Context, userID string, limit int) ([]*domain.DailyRecommendation, error)
	Today() time.Time
}

// Dispatcher executa o gatilho de feedback sem bloquear a resposta
type Dispatcher func(func())

type Option func(*Service)

func WithDispatcher(dispatch Dispatcher) Option {
	return func(s *Service) {
		s.dispatch = dispatch
	}
}

func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	pilotRepository   repository.DailyRecommendationRepository
	checkinRepository repository.EmotionalCheckinRepository
	collector         SignalCollector
	composer          *Composer
	feedback          FeedbackTrigger
	thresholds        Thresholds
	location          *time.Location
	dispatch          Dispatcher
	now               func() time.Time
}

func NewService(
	pilotRepository repository.DailyRecommendationRepository,
	checkinRepository repository.EmotionalCheckinRepository,
	collector SignalCollector,
	feedback FeedbackTrigger,
	thresholds Thresholds,
	opts ...Option,
) *Service {
	s := &Service{
		pilotRepository:   pilotRepository,
		checkinRepository: checkinRepository,
		collector:         collector,
		composer:          NewComposer(thresholds),
		feedback:          feedback,
		thresholds:        thresholds,
		location:          time.UTC,
		dispatch:          func(fn func()) { go fn() },
		now:               time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Today() time.Time {
	return utils.StartOfDay(s.now().In(s.location))
}

func (s *Service) GetTodayRecommendation(ctx context.Context, userID, orgID string) (*domain.DailyRecommendation, error) {
	return s.GetOrCreateDailyRecommendation(ctx, userID, orgID, s.Today())
}

// GetOrCreateDailyRecommendation é idempotente por (usuário, data). Uma linha existente é
// devolvida sem recálculo e sem efeitos colaterais. O feedback só roda quando esta chamada criou a linha.
// Só o dia atual (com um dia de folga para fuso) gera linha nova; datas antigas são apenas lidas.
func (s *Service) GetOrCreateDailyRecommendation(
	ctx context.Context,
	userID, orgID string,
	date time.Time,
) (*domain.DailyRecommendation, error) {
	if userID == "" {
		return nil, NewPilotError(ErrUserIDRequired, apiErrors.ErrMissingRequiredData, userID, "")
	}
	if orgID == "" {
		return nil, NewPilotError(ErrOrgIDRequired, apiErrors.ErrMissingRequiredData, userID, "")
	}

	date = s.normalizeDate(date)
	if s.isFuture(date) {
		return nil, NewPilotError(ErrFutureDate, apiErrors.ErrPilotFutureDate, userID, date.Format(time.DateOnly))
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"user_id": userID,
		"org_id":  orgID,
		"date":    date.Format(time.DateOnly),
	})

	existing, err := s.pilotRepository.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		logger.WithError(err).Warn("Erro ao buscar recomendação existente, calculando uma nova")
	} else if existing != nil {
		return existing, nil
	}

	if s.isPast(date) {
		logger.Debug("Sem recomendação gravada para data passada")
		return nil, nil
	}

	signals := s.collector.Collect(ctx, userID, date)
	classification := Classify(signals, s.thresholds)
	message := s.composer.Compose(classification, signals.Margin)

	id, err := utils.GenerateID()
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar ID da recomendação")
		return nil, NewPilotError(ErrPersistenceFailure, apiErrors.ErrInternalServer, userID, err.Error())
	}

	recommendation := &domain.DailyRecommendation{
		ID:              id,
		UserID:          userID,
		OrgID:           orgID,
		Date:            date,
		State:           classification.State,
		MessageMain:     message.Main,
		MessageWhy:      message.Why,
		SuggestedLimit:  message.SuggestedLimit,
		SuggestedAction: message.SuggestedAction,
		Flexibility:     message.Flexibility,
		SignalsSnapshot: buildSnapshot(signals, classification),
	}

	if err := s.pilotRepository.Create(ctx, recommendation); err != nil {
		if postgres.IsUniqueViolation(err) {
			return s.recoverFromRace(ctx, userID, date, logger)
		}

		logger.WithError(err).Error("Erro ao persistir recomendação diária")
		return nil, NewPilotError(ErrPersistenceFailure, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	logger.WithFields(log.Fields{
		"state":  recommendation.State,
		"scores": classification.Scores,
	}).Info("Recomendação diária criada")

	s.triggerFeedback(ctx, recommendation, signals.YesterdayRecommendation)

	return recommendation, nil
}

// recoverFromRace relê a linha gravada pela chamada concorrente que venceu
func (s *Service) recoverFromRace(ctx context.Context, userID string, date time.Time, logger log.Logger) (*domain.DailyRecommendation, error) {
	logger.Info("Recomendação criada por outra requisição, relendo a existente")

	existing, err := s.pilotRepository.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		logger.WithError(err).Error("Erro ao reler recomendação após conflito")
		return nil, NewPilotError(ErrPersistenceFailure, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}
	if existing == nil {
		return nil, NewPilotError(ErrPersistenceFailure, apiErrors.ErrDatabaseOperation, userID, "recomendação não encontrada após conflito")
	}

	return existing, nil
}

func (s *Service) triggerFeedback(ctx context.Context, recommendation, yesterday *domain.DailyRecommendation) {
	if s.feedback == nil {
		return
	}

	// a resposta pode terminar antes do ledger, então o contexto não pode ser cancelado junto
	feedbackCtx := context.WithoutCancel(ctx)

	s.dispatch(func() {
		eventKey, points, err := s.feedback.Trigger(feedbackCtx, recommendation, yesterday)

		logger := log.ForContext(feedbackCtx).WithFields(log.Fields{
			"user_id":   recommendation.UserID,
			"event_key": eventKey,
		})
		if err != nil {
			logger.WithError(err).Warn("Erro ao emitir evento de pontos do piloto")
			return
		}
		if eventKey != "" {
			logger.WithField("points", points).Info("Evento de pontos do piloto emitido")
		}
	})
}

// SaveEmotionalCheckin grava (ou substitui) o check-in emocional do dia
func (s *Service) SaveEmotionalCheckin(ctx context.Context, userID string, date time.Time, value string) (bool, error) {
	if userID == "" {
		return false, NewPilotError(ErrUserIDRequired, apiErrors.ErrMissingRequiredData, userID, "")
	}

	date = s.normalizeDate(date)
	if s.isFuture(date) {
		return false, NewPilotError(ErrFutureDate, apiErrors.ErrPilotFutureDate, userID, date.Format(time.DateOnly))
	}

	request := domain.SaveEmotionalCheckinRequest{Value: strings.TrimSpace(value)}
	if err := validate.Struct(request); err != nil {
		return false, NewPilotError(ErrInvalidCheckin, apiErrors.ErrPilotInvalidCheckin, userID, err.Error())
	}

	id, err := utils.GenerateID()
	if err != nil {
		return false, NewPilotError(ErrCheckinPersistence, apiErrors.ErrInternalServer, userID, err.Error())
	}

	checkin := &domain.EmotionalCheckin{
		ID:          id,
		UserID:      userID,
		CheckinDate: date,
		Value:       request.Value,
	}

	if err := s.checkinRepository.Upsert(ctx, checkin); err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("Erro ao salvar check-in emocional")
		return false, NewPilotError(ErrCheckinPersistence, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	return true, nil
}

// ListHistory só lê: nunca cria recomendações para dias sem linha
func (s *Service) ListHistory(ctx context.Context, userID string, limit int) ([]*domain.DailyRecommendation, error) {
	if userID == "" {
		return nil, NewPilotError(ErrUserIDRequired, apiErrors.ErrMissingRequiredData, userID, "")
	}

	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	recommendations, err := s.pilotRepository.ListByUser(ctx, userID, uint64(limit))
	if err != nil {
		return nil, NewPilotError(ErrFetchHistory, apiErrors.ErrDatabaseOperation, userID, err.Error())
	}

	return recommendations, nil
}

// isFuture e isPast toleram um dia de diferença entre o fuso do cliente e o da app
func (s *Service) isFuture(date time.Time) bool {
	return date.After(s.Today().AddDate(0, 0, dateSlackDays))
}

func (s *Service) isPast(date time.Time) bool {
	return date.Before(s.Today().AddDate(0, 0, -dateSlackDays))
}

func (s *Service) normalizeDate(date time.Time) time.Time {
	if date.IsZero() {
		return s.Today()
	}
	// datas vindas da URL chegam na location da app; outras são convertidas antes de truncar
	return utils.StartOfDay(date.In(s.location))
}

func buildSnapshot(signals *Signals, classification Classification) domain.SignalsSnapshot {
	d := classification.Derived

	return domain.SignalsSnapshot{
		DayOfMonth:                      d.DayOfMonth,
		IsWeekend:                       d.IsWeekend,
		PreQuincena:                     d.PreQuincena,
		PostQuincena:                    d.PostQuincena,
		Margin:                          signals.Margin,
		IncomeMonth:                     signals.IncomeMonth,
		ExpenseMonth:                    utils.RoundCents(signals.TotalExpenseMonth()),
		RecurringExpenseMonth:           signals.RecurringExpenseMonth,
		RatioExpenseIncome:              utils.RoundCents(d.Ratio),
		AvgExpenseToday:                 d.AvgToday,
		AvgExpenseOverall:               utils.RoundCents(d.OverallAvg),
		HighRiskImpulsiveDay:            d.HighRiskImpulsiveDay,
		FollowedRecommendationYesterday: d.FollowedYesterday,
		DebtDueSoon:                     signals.DebtDueSoon,
		EmotionalCheckin:                signals.EmotionalCheckin,
	}
}

// IsUnavailable indica erro que a camada HTTP deve traduzir para "sem orientação hoje"
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrPersistenceFailure)
}
