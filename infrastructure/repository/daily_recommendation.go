package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/finance-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
)

const (
	dailyRecommendationsTable = "pilot_daily_recommendations pdr"
)

var dailyRecommendationColumns = []string{
	"pdr.id",
	"pdr.user_id",
	"pdr.org_id",
	"pdr.date",
	"pdr.state",
	"pdr.message_main",
	"pdr.message_why",
	"pdr.suggested_limit",
	"pdr.suggested_action",
	"pdr.flexibility",
	"pdr.signals_snapshot",
	"pdr.created_at",
}

type DailyRecommendationRepository interface {
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*domain.DailyRecommendation, error)
	// Create falha com postgres.ErrUniqueViolation se já existir recomendação para (user_id, date)
	Create(ctx context.Context, recommendation *domain.DailyRecommendation) error
	ListByUser(ctx context.Context, userID string, limit uint64) ([]*domain.DailyRecommendation, error)
}

type dailyRecommendationRepository struct {
	conn *postgres.Connection
}

func NewDailyRecommendationRepository(conn *postgres.Connection) DailyRecommendationRepository {
	return &dailyRecommendationRepository{
		conn: conn,
	}
}

func (r *dailyRecommendationRepository) GetByUserAndDate(
	ctx context.Context,
	userID string,
	date time.Time,
) (*domain.DailyRecommendation, error) {
	query, args, err := squirrel.
		Select(dailyRecommendationColumns...).
		From(dailyRecommendationsTable).
		Where(squirrel.Eq{"pdr.user_id": userID, "pdr.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de recomendação")
	}

	recommendation, err := r.scanRecommendation(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(postgres.MapError(err), "erro ao buscar recomendação diária")
	}

	return r.normalizeDate(recommendation, date.Location()), nil
}

// Create insere a recomendação sem ON CONFLICT: a constraint (user_id, date) decide quem vence a corrida
func (r *dailyRecommendationRepository) Create(ctx context.Context, recommendation *domain.DailyRecommendation) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("pilot_daily_recommendations").
		Columns(
			"id",
			"user_id",
			"org_id",
			"date",
			"state",
			"message_main",
			"message_why",
			"suggested_limit",
			"suggested_action",
			"flexibility",
			"signals_snapshot",
		).
		Values(
			recommendation.ID,
			recommendation.UserID,
			recommendation.OrgID,
			recommendation.DateKey(),
			recommendation.State,
			recommendation.MessageMain,
			recommendation.MessageWhy,
			recommendation.SuggestedLimit,
			recommendation.SuggestedAction,
			recommendation.Flexibility,
			recommendation.SignalsSnapshot,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de inserção da recomendação")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&recommendation.CreatedAt); err != nil {
		return errors.Wrap(postgres.MapError(err), "erro ao inserir recomendação diária")
	}

	return nil
}

func (r *dailyRecommendationRepository) ListByUser(
	ctx context.Context,
	userID string,
	limit uint64,
) ([]*domain.DailyRecommendation, error) {
	query, args, err := squirrel.
		Select(dailyRecommendationColumns...).
		From(dailyRecommendationsTable).
		Where(squirrel.Eq{"pdr.user_id": userID}).
		OrderBy("pdr.date DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de histórico")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(postgres.MapError(err), "erro ao listar histórico de recomendações")
	}
	defer rows.Close()

	recommendations := make([]*domain.DailyRecommendation, 0)
	for rows.Next() {
		recommendation, err := r.scanRecommendation(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear recomendação")
		}

		recommendations = append(recommendations, recommendation)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de recomendações")
	}

	return recommendations, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *dailyRecommendationRepository) scanRecommendation(row rowScanner) (*domain.DailyRecommendation, error) {
	recommendation := &domain.DailyRecommendation{}

	var suggestedLimit sql.NullFloat64
	if err := row.Scan(
		&recommendation.ID,
		&recommendation.UserID,
		&recommendation.OrgID,
		&recommendation.Date,
		&recommendation.State,
		&recommendation.MessageMain,
		&recommendation.MessageWhy,
		&suggestedLimit,
		&recommendation.SuggestedAction,
		&recommendation.Flexibility,
		&recommendation.SignalsSnapshot,
		&recommendation.CreatedAt,
	); err != nil {
		return nil, err
	}

	if suggestedLimit.Valid {
		limit := suggestedLimit.Float64
		recommendation.SuggestedLimit = &limit
	}

	return recommendation, nil
}

// normalizeDate converte a coluna DATE (UTC) para meia-noite na location do chamador
func (r *dailyRecommendationRepository) normalizeDate(recommendation *domain.DailyRecommendation, loc *time.Location) *domain.DailyRecommendation {
	d := recommendation.Date
	recommendation.Date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return recommendation
}
