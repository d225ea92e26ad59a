package domain

import (
	"database/sql/driver"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type PilotState string

const (
	PilotStateSafe        PilotState = "SAFE"
	PilotStateCaution     PilotState = "CAUTION"
	PilotStateContainment PilotState = "CONTAINMENT"
	PilotStateReward      PilotState = "REWARD"
)

// PilotStatePriority é a ordem de desempate do classificador: o estado mais conservador vence.
var PilotStatePriority = []PilotState{
	PilotStateContainment,
	PilotStateCaution,
	PilotStateSafe,
	PilotStateReward,
}

func (s PilotState) IsValid() bool {
	switch s {
	case PilotStateSafe, PilotStateCaution, PilotStateContainment, PilotStateReward:
		return true
	}
	return false
}

type Flexibility string

const (
	FlexibilityLow    Flexibility = "low"
	FlexibilityMedium Flexibility = "medium"
	FlexibilityHigh   Flexibility = "high"
)

// DailyRecommendation é a recomendação do piloto para um usuário em um dia.
// Existe no máximo uma por (user_id, date) e nunca é atualizada depois de criada.
type DailyRecommendation struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	OrgID           string          `json:"org_id"`
	Date            time.Time       `json:"date"`
	State           PilotState      `json:"state"`
	MessageMain     string          `json:"message_main"`
	MessageWhy      string          `json:"message_why"`
	SuggestedLimit  *float64        `json:"suggested_limit"`
	SuggestedAction string          `json:"suggested_action"`
	Flexibility     Flexibility     `json:"flexibility"`
	SignalsSnapshot SignalsSnapshot `json:"signals_snapshot"`
	CreatedAt       time.Time       `json:"created_at"`
}

// DateKey retorna a data no formato yyyy-mm-dd
func (r *DailyRecommendation) DateKey() string {
	return r.Date.Format(time.DateOnly)
}

// SignalsSnapshot guarda os sinais usados na classificação, para auditoria.
// Nunca é recalculado depois da criação da recomendação.
type SignalsSnapshot struct {
	DayOfMonth                      int     `json:"day_of_month"`
	IsWeekend                       bool    `json:"is_weekend"`
	PreQuincena                     bool    `json:"pre_quincena"`
	PostQuincena                    bool    `json:"post_quincena"`
	Margin                          float64 `json:"margin"`
	IncomeMonth                     float64 `json:"income_month"`
	ExpenseMonth                    float64 `json:"expense_month"`
	RecurringExpenseMonth           float64 `json:"recurring_expense_month"`
	RatioExpenseIncome              float64 `json:"ratio_expense_income"`
	AvgExpenseToday                 float64 `json:"avg_expense_today"`
	AvgExpenseOverall               float64 `json:"avg_expense_overall"`
	HighRiskImpulsiveDay            bool    `json:"high_risk_impulsive_day"`
	FollowedRecommendationYesterday bool    `json:"followed_recommendation_yesterday"`
	DebtDueSoon                     bool    `json:"debt_due_soon"`
	EmotionalCheckin                *string `json:"emotional_checkin"`
}

// Value serializa o snapshot para a coluna JSONB
func (s SignalsSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan desserializa o snapshot a partir da coluna JSONB
func (s *SignalsSnapshot) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = SignalsSnapshot{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("signals_snapshot: tipo de origem não suportado")
	}
}

type DailyRecommendationResponse struct {
	Available      bool                 `json:"available"`
	Recommendation *DailyRecommendation `json:"recommendation"`
}
