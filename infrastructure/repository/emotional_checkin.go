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
	emotionalCheckinsTable = "emotional_checkins ec"
)

type EmotionalCheckinRepository interface {
	Upsert(ctx context.Context, checkin *domain.EmotionalCheckin) error
	GetByDate(ctx context.Context, userID string, date time.Time) (*domain.EmotionalCheckin, error)
}

type emotionalCheckinRepository struct {
	conn *postgres.Connection
}

func NewEmotionalCheckinRepository(conn *postgres.Connection) EmotionalCheckinRepository {
	return &emotionalCheckinRepository{
		conn: conn,
	}
}

// Upsert grava o check-in do dia, substituindo o valor se já existir um para (user_id, checkin_date)
func (r *emotionalCheckinRepository) Upsert(ctx context.Context, checkin *domain.EmotionalCheckin) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("emotional_checkins").
		Columns("id", "user_id", "checkin_date", "value").
		Values(checkin.ID, checkin.UserID, checkin.CheckinDate.Format(time.DateOnly), checkin.Value).
		Suffix(`
			ON CONFLICT (user_id, checkin_date) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de check-in")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(postgres.MapError(err), "erro ao gravar check-in emocional")
	}

	return nil
}

func (r *emotionalCheckinRepository) GetByDate(ctx context.Context, userID string, date time.Time) (*domain.EmotionalCheckin, error) {
	query, args, err := squirrel.
		Select("ec.id, ec.user_id, ec.checkin_date, ec.value, ec.created_at, ec.updated_at").
		From(emotionalCheckinsTable).
		Where(squirrel.Eq{"ec.user_id": userID, "ec.checkin_date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de check-in")
	}

	checkin := &domain.EmotionalCheckin{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&checkin.ID,
		&checkin.UserID,
		&checkin.CheckinDate,
		&checkin.Value,
		&checkin.CreatedAt,
		&checkin.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(postgres.MapError(err), "erro ao buscar check-in emocional")
	}

	return checkin, nil
}
