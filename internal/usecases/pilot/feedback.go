package pilot

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/finance-pilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
)

type FeedbackTrigger interface {
	// Trigger devolve a chave do evento emitido ("" quando nenhum se aplica) e os pontos concedidos
	Trigger(ctx context.Context, recommendation *domain.DailyRecommendation, yesterday *domain.DailyRecommendation) (string, int, error)
}

type feedbackTrigger struct {
	ledger repository.PointsLedgerRepository
}

func NewFeedbackTrigger(ledger repository.PointsLedgerRepository) FeedbackTrigger {
	return &feedbackTrigger{ledger: ledger}
}

// Trigger premia quem seguiu a contenção de ontem ou dá um ponto de resgate a quem não seguiu.
// A referência é a data de ontem, então o ledger deduplica repetições.
func (f *feedbackTrigger) Trigger(
	ctx context.Context,
	recommendation *domain.DailyRecommendation,
	yesterday *domain.DailyRecommendation,
) (string, int, error) {
	if recommendation == nil {
		return "", 0, nil
	}

	var eventKey string
	switch {
	case recommendation.SignalsSnapshot.FollowedRecommendationYesterday:
		eventKey = domain.PointsEventPilotFollowed
	case yesterday != nil && yesterday.State == domain.PilotStateContainment:
		eventKey = domain.PointsEventPilotRescue
	default:
		return "", 0, nil
	}

	refID := recommendation.Date.AddDate(0, 0, -1).Format(time.DateOnly)

	points, err := f.ledger.Emit(ctx, recommendation.OrgID, recommendation.UserID, eventKey, domain.PointsRefTablePilot, refID)
	if err != nil {
		return eventKey, 0, errors.Wrapf(err, "erro ao emitir evento %s", eventKey)
	}

	return eventKey, points, nil
}
