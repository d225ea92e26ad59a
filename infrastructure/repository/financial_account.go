package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/finance-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
)

const (
	financialAccountsTable = "financial_accounts fa"
)

type FinancialAccountRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.FinancialAccount, error)
}

type financialAccountRepository struct {
	conn *postgres.Connection
}

func NewFinancialAccountRepository(conn *postgres.Connection) FinancialAccountRepository {
	return &financialAccountRepository{
		conn: conn,
	}
}

func (r *financialAccountRepository) ListByUser(ctx context.Context, userID string) ([]*domain.FinancialAccount, error) {
	query, args, err := squirrel.
		Select("fa.id, fa.user_id, fa.name, fa.type, fa.opening_balance, fa.payment_day").
		From(financialAccountsTable).
		Where(squirrel.Eq{"fa.user_id": userID, "fa.deleted_at": nil}).
		OrderBy("fa.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de contas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(postgres.MapError(err), "erro ao listar contas do usuário")
	}
	defer rows.Close()

	accounts := make([]*domain.FinancialAccount, 0)
	for rows.Next() {
		account, err := r.deserializeAccount(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao deserializar a conta")
		}

		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro ao iterar sobre as contas")
	}

	return accounts, nil
}

func (r *financialAccountRepository) deserializeAccount(rows *sql.Rows) (*domain.FinancialAccount, error) {
	account := &domain.FinancialAccount{}

	var paymentDay sql.NullInt64
	if err := rows.Scan(
		&account.ID,
		&account.UserID,
		&account.Name,
		&account.Type,
		&account.OpeningBalance,
		&paymentDay,
	); err != nil {
		return nil, err
	}

	if paymentDay.Valid {
		day := int(paymentDay.Int64)
		account.PaymentDay = &day
	}

	return account, nil
}
