package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/finance-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/finance-pilot-api/pkg/utils"
)

type PointsLedgerRepository interface {
	// Emit credita os pontos da regra eventKey e retorna quanto foi concedido.
	// Retorna 0 quando a regra está inativa ou a referência já foi usada.
	Emit(ctx context.Context, orgID, userID, eventKey, refTable, refID string) (int, error)
}

type pointsLedgerRepository struct {
	conn *postgres.Connection
}

func NewPointsLedgerRepository(conn *postgres.Connection) PointsLedgerRepository {
	return &pointsLedgerRepository{
		conn: conn,
	}
}

func (r *pointsLedgerRepository) Emit(ctx context.Context, orgID, userID, eventKey, refTable, refID string) (int, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao gerar ID do evento de pontos")
	}

	rule := squirrel.
		Select().
		Column("?", id).
		Column("?", orgID).
		Column("?", userID).
		Column("pr.event_key").
		Column("?", refTable).
		Column("?", refID).
		Column("pr.points").
		From("points_rules pr").
		Where(squirrel.Eq{"pr.event_key": eventKey, "pr.active": true})

	query, args, err := squirrel.StatementBuilder.
		Insert("points_events").
		Columns("id", "org_id", "user_id", "event_key", "ref_table", "ref_id", "points").
		Select(rule).
		Suffix("ON CONFLICT (user_id, event_key, ref_table, ref_id) DO NOTHING RETURNING points").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query de pontos")
	}

	var points int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&points); err != nil {
		// Sem linha retornada: regra inativa ou referência já utilizada
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, errors.Wrapf(postgres.MapError(err), "erro ao emitir evento de pontos %s", eventKey)
	}

	return points, nil
}
