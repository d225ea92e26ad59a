package domain

type FinancialAccountType string

const (
	FinancialAccountTypeDebit      FinancialAccountType = "debit"
	FinancialAccountTypeCash       FinancialAccountType = "cash"
	FinancialAccountTypeSavings    FinancialAccountType = "savings"
	FinancialAccountTypeCreditCard FinancialAccountType = "credit_card"
	FinancialAccountTypeCredit     FinancialAccountType = "credit"
	FinancialAccountTypeLoan       FinancialAccountType = "loan"
)

// IsCredit indica se o saldo da conta é uma dívida (entra negativo na margem)
func (t FinancialAccountType) IsCredit() bool {
	switch t {
	case FinancialAccountTypeCreditCard, FinancialAccountTypeCredit, FinancialAccountTypeLoan:
		return true
	}
	return false
}

type FinancialAccount struct {
	ID             string               `json:"id"`
	UserID         string               `json:"user_id"`
	Name           string               `json:"name"`
	Type           FinancialAccountType `json:"type"`
	OpeningBalance float64              `json:"opening_balance"`
	PaymentDay     *int                 `json:"payment_day"` // 1..31, apenas contas de crédito
}
