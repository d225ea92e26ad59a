package pilot

import (
	"time"

	"github.com/vfg2006/finance-pilot-api/internal/domain"
)

// Signals reúne tudo que o classificador precisa para um usuário em uma data.
// Leituras que falham chegam aqui com o valor neutro e ficam listadas em Degraded.
type Signals struct {
	Date                    time.Time
	IncomeMonth             float64
	ExpenseMonth            float64 // despesas não recorrentes do mês
	RecurringExpenseMonth   float64
	Margin                  float64
	WeekdayAverages         [7]float64 // indexado por time.Weekday
	DebtDueSoon             bool
	EmotionalCheckin        *string
	YesterdayRecommendation *domain.DailyRecommendation
	YesterdayExpense        float64
	Degraded                []string
}

// TotalExpenseMonth soma gastos pontuais e a carga recorrente normalizada
func (s *Signals) TotalExpenseMonth() float64 {
	return s.ExpenseMonth + s.RecurringExpenseMonth
}
