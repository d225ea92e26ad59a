package pilot

import (
	"strings"
	"time"
	"unicode"

	"github.com/vfg2006/finance-pilot-api/internal/domain"
)

// negativeEmotionKeywords cobre estresse, ansiedade, tristeza e raiva em espanhol e inglês.
// Cada palavra do check-in é comparada por prefixo ("ansiosa" casa com "ansios").
var negativeEmotionKeywords = []string{
	"estrés", "estres", "estresad",
	"ansiedad", "ansios",
	"triste", "tristeza", "deprimid",
	"enojo", "enojad", "molest", "furios",
	"preocupad", "frustrad", "agobiad",
	"stress", "anxious", "anxiety", "sad", "angry", "worried", "upset",
}

// Derived são os valores calculados a partir dos sinais brutos
type Derived struct {
	DayOfMonth           int
	IsWeekend            bool
	PreQuincena          bool
	PostQuincena         bool
	Ratio                float64
	AvgToday             float64
	OverallAvg           float64
	HighRiskImpulsiveDay bool
	FollowedYesterday    bool
	NegativeEmotion      bool
}

type Scores struct {
	Containment int
	Caution     int
	Safe        int
	Reward      int
}

func (s Scores) Of(state domain.PilotState) int {
	switch state {
	case domain.PilotStateContainment:
		return s.Containment
	case domain.PilotStateCaution:
		return s.Caution
	case domain.PilotStateSafe:
		return s.Safe
	case domain.PilotStateReward:
		return s.Reward
	}
	return 0
}

type Classification struct {
	State   domain.PilotState
	Scores  Scores
	Derived Derived
}

// Classify é puro: mesmos sinais e limiares sempre dão o mesmo estado
func Classify(signals *Signals, t Thresholds) Classification {
	if signals == nil {
		signals = &Signals{}
	}

	derived := Derive(signals, t)
	scores := score(signals, derived, t)

	return Classification{
		State:   pickState(scores),
		Scores:  scores,
		Derived: derived,
	}
}

func Derive(signals *Signals, t Thresholds) Derived {
	day := signals.Date.Day()
	weekday := signals.Date.Weekday()

	derived := Derived{
		DayOfMonth:   day,
		IsWeekend:    weekday == time.Saturday || weekday == time.Sunday,
		PreQuincena:  IsPreQuincena(day),
		PostQuincena: IsPostQuincena(day),
		AvgToday:     signals.WeekdayAverages[weekday],
	}

	if signals.IncomeMonth > 0 {
		derived.Ratio = signals.TotalExpenseMonth() / signals.IncomeMonth
	}

	var sum float64
	for _, avg := range signals.WeekdayAverages {
		sum += avg
	}
	derived.OverallAvg = sum / float64(len(signals.WeekdayAverages))
	derived.HighRiskImpulsiveDay = derived.OverallAvg > 0 && derived.AvgToday >= derived.OverallAvg*t.ImpulsiveMultiplier

	yesterday := signals.YesterdayRecommendation
	derived.FollowedYesterday = yesterday != nil &&
		yesterday.State == domain.PilotStateContainment &&
		signals.YesterdayExpense < t.FollowedCeiling()

	derived.NegativeEmotion = IsNegativeEmotion(signals.EmotionalCheckin)

	return derived
}

func IsPreQuincena(day int) bool {
	return (day >= 25 && day <= 31) || (day >= 1 && day <= 5)
}

func IsPostQuincena(day int) bool {
	return (day >= 14 && day <= 17) || day >= 28
}

func IsNegativeEmotion(checkin *string) bool {
	if checkin == nil {
		return false
	}

	words := strings.FieldsFunc(strings.ToLower(*checkin), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	for _, word := range words {
		for _, keyword := range negativeEmotionKeywords {
			if strings.HasPrefix(word, keyword) {
				return true
			}
		}
	}

	return false
}

func score(signals *Signals, d Derived, t Thresholds) Scores {
	var s Scores
	margin := signals.Margin

	if margin < t.ContainmentCeiling || (d.PreQuincena && margin < t.SafeFloor) {
		s.Containment += 2
	}
	if signals.DebtDueSoon {
		s.Containment++
	}
	if d.HighRiskImpulsiveDay && (d.PreQuincena || d.Ratio > t.HighRatio) {
		s.Containment++
	}
	if d.NegativeEmotion && margin < t.SafeFloor {
		s.Containment++
	}

	if d.PreQuincena || d.Ratio > t.HighRatio {
		s.Caution++
	}
	if d.HighRiskImpulsiveDay {
		s.Caution++
	}
	if d.NegativeEmotion && s.Containment == 0 {
		s.Caution++
	}

	if margin > t.SafeFloor && !d.PreQuincena && !d.HighRiskImpulsiveDay {
		s.Safe += 2
	}
	if d.PostQuincena && d.Ratio < t.SafeRatio {
		s.Safe++
	}
	if d.FollowedYesterday {
		s.Safe++
	}

	if d.FollowedYesterday && margin > t.ContainmentCeiling {
		s.Reward++
	}
	if d.PostQuincena && d.Ratio < t.RewardRatio {
		s.Reward++
	}

	return s
}

// pickState só troca de estado com pontuação estritamente maior, então empates
// ficam com o estado mais conservador e tudo zerado cai em CONTAINMENT.
func pickState(scores Scores) domain.PilotState {
	best := domain.PilotStatePriority[0]
	bestScore := scores.Of(best)

	for _, state := range domain.PilotStatePriority[1:] {
		if current := scores.Of(state); current > bestScore {
			best = state
			bestScore = current
		}
	}

	return best
}
