package pilot

import (
	"github.com/vfg2006/finance-pilot-api/internal/domain"
)

// Message é o texto e os metadados exibidos ao usuário
type Message struct {
	Main            string
	Why             string
	SuggestedLimit  *float64
	SuggestedAction string
	Flexibility     domain.Flexibility
}

// MessageContext é o que as regras de texto podem consultar
type MessageContext struct {
	Derived    Derived
	Margin     float64
	Thresholds Thresholds
}

type whyRule struct {
	when func(MessageContext) bool
	text string
}

// messageVariant permite mais de um texto por estado. A primeira variante cujo
// applies casar é usada; applies nil casa sempre.
type messageVariant struct {
	name        string
	applies     func(MessageContext) bool
	main        string
	why         []whyRule
	fallbackWhy string
	action      string
	flexibility domain.Flexibility
	limit       func(Thresholds) *float64
}

var variantsByState = map[domain.PilotState][]messageVariant{
	domain.PilotStateContainment: {
		{
			name: "containment_default",
			main: "Hoy toca modo contención: limita tus gastos a lo esencial.",
			why: []whyRule{
				{
					when: func(c MessageContext) bool {
						return c.Derived.PreQuincena && c.Margin < c.Thresholds.SafeFloor
					},
					text: "Se acerca tu próxima quincena y tu margen disponible es muy ajustado.",
				},
				{
					when: func(c MessageContext) bool { return c.Derived.HighRiskImpulsiveDay },
					text: "Históricamente este día de la semana gastas más de lo normal.",
				},
			},
			fallbackWhy: "Tu margen disponible está ajustado.",
			action:      "Evita compras no esenciales y registra cada gasto del día.",
			flexibility: domain.FlexibilityLow,
			limit: func(t Thresholds) *float64 {
				limit := t.ContainmentCeiling
				return &limit
			},
		},
	},
	domain.PilotStateCaution: {
		{
			name: "caution_default",
			main: "Hoy conviene ir con cuidado en tus gastos.",
			why: []whyRule{
				{
					when: func(c MessageContext) bool { return c.Derived.HighRiskImpulsiveDay },
					text: "Históricamente este día de la semana gastas más de lo normal.",
				},
				{
					when: func(c MessageContext) bool { return c.Derived.Ratio > c.Thresholds.HighRatio },
					text: "Este mes ya llevas gastada una parte alta de tus ingresos.",
				},
			},
			fallbackWhy: "Algunas señales de tu mes piden prudencia.",
			action:      "Antes de cada compra, pregúntate si puede esperar a mañana.",
			flexibility: domain.FlexibilityMedium,
			limit: func(t Thresholds) *float64 {
				limit := t.FollowedCeiling()
				return &limit
			},
		},
	},
	domain.PilotStateSafe: {
		{
			name:        "safe_default",
			main:        "Vas bien: hoy puedes gastar con tranquilidad.",
			why:         incomeWhyChain,
			fallbackWhy: "Tienes margen suficiente en tus cuentas.",
			action:      "Sigue tu plan y aparta algo para tu ahorro.",
			flexibility: domain.FlexibilityHigh,
		},
	},
	domain.PilotStateReward: {
		{
			name:        "reward_default",
			main:        "¡Buen trabajo! Hoy puedes darte un gusto.",
			why:         incomeWhyChain,
			fallbackWhy: "Tienes margen suficiente en tus cuentas.",
			action:      "Disfruta un gusto pequeño sin salirte de tu presupuesto.",
			flexibility: domain.FlexibilityHigh,
		},
	},
}

var incomeWhyChain = []whyRule{
	{
		when: func(c MessageContext) bool {
			return c.Derived.PostQuincena && c.Margin > c.Thresholds.ContainmentCeiling
		},
		text: "Acabas de recibir ingresos y tienes margen disponible.",
	},
}

type Composer struct {
	thresholds Thresholds
}

func NewComposer(thresholds Thresholds) *Composer {
	return &Composer{thresholds: thresholds}
}

// Compose é determinístico: o mesmo estado e contexto sempre geram a mesma mensagem
func (c *Composer) Compose(classification Classification, margin float64) Message {
	ctx := MessageContext{
		Derived:    classification.Derived,
		Margin:     margin,
		Thresholds: c.thresholds,
	}

	variant := selectVariant(classification.State, ctx)

	message := Message{
		Main:            variant.main,
		Why:             variant.fallbackWhy,
		SuggestedAction: variant.action,
		Flexibility:     variant.flexibility,
	}

	for _, rule := range variant.why {
		if rule.when(ctx) {
			message.Why = rule.text
			break
		}
	}

	if variant.limit != nil {
		message.SuggestedLimit = variant.limit(c.thresholds)
	}

	return message
}

func selectVariant(state domain.PilotState, ctx MessageContext) messageVariant {
	variants, ok := variantsByState[state]
	if !ok || len(variants) == 0 {
		variants = variantsByState[domain.PilotStateContainment]
	}

	for _, variant := range variants {
		if variant.applies == nil || variant.applies(ctx) {
			return variant
		}
	}

	return variants[len(variants)-1]
}
