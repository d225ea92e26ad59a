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
	transactionsTable = "transactions t"
)

type TransactionRepository interface {
	MonthAggregates(ctx context.Context, userID string, monthStart, monthEnd time.Time) (*domain.MonthAggregates, error)
	LifetimeNet(ctx context.Context, userID string) (float64, error)
	ListRecurringExpenses(ctx context.Context, userID string) ([]*domain.Transaction, error)
	ListExpensesBetween(ctx context.Context, userID string, start, end time.Time) ([]*domain.Transaction, error)
	SumExpensesBetween(ctx context.Context, userID string, start, end time.Time) (float64, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// MonthAggregates soma receitas e despesas não recorrentes no intervalo [monthStart, monthEnd)
func (r *transactionRepository) MonthAggregates(
	ctx context.Context,
	userID string,
	monthStart, monthEnd time.Time,
) (*domain.MonthAggregates, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(t.amount) FILTER (WHERE t.kind = 'INCOME'), 0)",
			"COALESCE(SUM(t.amount) FILTER (WHERE t.kind = 'EXPENSE'), 0)",
		).
		From(transactionsTable).
		Where(squirrel.Eq{"t.user_id": userID, "t.is_recurring": false, "t.deleted_at": nil}).
		Where(squirrel.GtOrEq{"t.occurred_at": monthStart}).
		Where(squirrel.Lt{"t.occurred_at": monthEnd}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de agregados mensais")
	}

	aggregates := &domain.MonthAggregates{}
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&aggregates.Income, &aggregates.Expense); err != nil {
		return nil, errors.Wrap(postgres.MapError(err), "erro ao buscar agregados mensais")
	}

	return aggregates, nil
}

// LifetimeNet retorna receitas menos despesas de todo o histórico do usuário
func (r *transactionRepository) LifetimeNet(ctx context.Context, userID string) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(CASE WHEN t.kind = 'INCOME' THEN t.amount WHEN t.kind = 'EXPENSE' THEN -t.amount ELSE 0 END), 0)").
		From(transactionsTable).
		Where(squirrel.Eq{"t.user_id": userID, "t.deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query de saldo")
	}

	var net float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&net); err != nil {
		return 0, errors.Wrap(postgres.MapError(err), "erro ao buscar saldo histórico")
	}

	return net, nil
}

func (r *transactionRepository) ListRecurringExpenses(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	return r.listTransactions(ctx, squirrel.Eq{
		"t.user_id":      userID,
		"t.kind":         domain.TransactionKindExpense,
		"t.is_recurring": true,
		"t.deleted_at":   nil,
	})
}

// ListExpensesBetween lista despesas não recorrentes no intervalo [start, end)
func (r *transactionRepository) ListExpensesBetween(
	ctx context.Context,
	userID string,
	start, end time.Time,
) ([]*domain.Transaction, error) {
	return r.listTransactions(ctx, squirrel.And{
		squirrel.Eq{
			"t.user_id":      userID,
			"t.kind":         domain.TransactionKindExpense,
			"t.is_recurring": false,
			"t.deleted_at":   nil,
		},
		squirrel.GtOrEq{"t.occurred_at": start},
		squirrel.Lt{"t.occurred_at": end},
	})
}

// SumExpensesBetween soma despesas não recorrentes no intervalo [start, end)
func (r *transactionRepository) SumExpensesBetween(
	ctx context.Context,
	userID string,
	start, end time.Time,
) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(t.amount), 0)").
		From(transactionsTable).
		Where(squirrel.Eq{
			"t.user_id":      userID,
			"t.kind":         domain.TransactionKindExpense,
			"t.is_recurring": false,
			"t.deleted_at":   nil,
		}).
		Where(squirrel.GtOrEq{"t.occurred_at": start}).
		Where(squirrel.Lt{"t.occurred_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir a query de despesas")
	}

	var total float64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, errors.Wrap(postgres.MapError(err), "erro ao somar despesas")
	}

	return total, nil
}

func (r *transactionRepository) listTransactions(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Transaction, error) {
	query, args, err := squirrel.
		Select(
			"t.id",
			"t.user_id",
			"t.account_id",
			"t.kind",
			"t.amount",
			"t.occurred_at",
			"t.is_recurring",
			"t.recurrence_interval_months",
			"t.recurrence_total_occurrences",
		).
		From(transactionsTable).
		Where(where).
		OrderBy("t.occurred_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de transações")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(postgres.MapError(err), "erro ao listar transações")
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		transaction, err := r.scanTransaction(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear transação")
		}

		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de transações")
	}

	return transactions, nil
}

func (r *transactionRepository) scanTransaction(rows *sql.Rows) (*domain.Transaction, error) {
	transaction := &domain.Transaction{}

	var totalOccurrences sql.NullInt64
	if err := rows.Scan(
		&transaction.ID,
		&transaction.UserID,
		&transaction.AccountID,
		&transaction.Kind,
		&transaction.Amount,
		&transaction.OccurredAt,
		&transaction.IsRecurring,
		&transaction.RecurrenceIntervalMonths,
		&totalOccurrences,
	); err != nil {
		return nil, err
	}

	if totalOccurrences.Valid {
		total := int(totalOccurrences.Int64)
		transaction.RecurrenceTotalOccurrences = &total
	}

	return transaction, nil
}
