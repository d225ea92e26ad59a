package domain

import "time"

type TransactionKind string

const (
	TransactionKindIncome   TransactionKind = "INCOME"
	TransactionKindExpense  TransactionKind = "EXPENSE"
	TransactionKindTransfer TransactionKind = "TRANSFER"
)

type Transaction struct {
	ID                         string          `json:"id"`
	UserID                     string          `json:"user_id"`
	AccountID                  *string         `json:"account_id"`
	Kind                       TransactionKind `json:"kind"`
	Amount                     float64         `json:"amount"`
	OccurredAt                 time.Time       `json:"occurred_at"`
	IsRecurring                bool            `json:"is_recurring"`
	RecurrenceIntervalMonths   int             `json:"recurrence_interval_months"`
	RecurrenceTotalOccurrences *int            `json:"recurrence_total_occurrences"`
}

// MonthAggregates são os totais de transações não recorrentes de um mês
type MonthAggregates struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
