package pilot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/finance-pilot-api/infrastructure/repository/mocks"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int {
	return &i
}

func TestRecurringContribution(t *testing.T) {
	start := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		template *domain.Transaction
		month    time.Time
		expected float64
	}{
		{
			name:     "Trimestral dentro do limite de ocorrências",
			template: &domain.Transaction{Amount: 1200, OccurredAt: start, RecurrenceIntervalMonths: 3, RecurrenceTotalOccurrences: intPtr(4)},
			month:    time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			expected: 400,
		},
		{
			name:     "Última ocorrência ainda conta",
			template: &domain.Transaction{Amount: 1200, OccurredAt: start, RecurrenceIntervalMonths: 3, RecurrenceTotalOccurrences: intPtr(4)},
			month:    time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			expected: 400,
		},
		{
			name:     "Depois do limite de ocorrências não contribui",
			template: &domain.Transaction{Amount: 1200, OccurredAt: start, RecurrenceIntervalMonths: 3, RecurrenceTotalOccurrences: intPtr(4)},
			month:    time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "Modelo que ainda não começou",
			template: &domain.Transaction{Amount: 1200, OccurredAt: start, RecurrenceIntervalMonths: 3},
			month:    time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "Sem limite de ocorrências",
			template: &domain.Transaction{Amount: 1200, OccurredAt: start, RecurrenceIntervalMonths: 3},
			month:    time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC),
			expected: 400,
		},
		{
			name:     "Intervalo inválido vira mensal",
			template: &domain.Transaction{Amount: 250, OccurredAt: start},
			month:    time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			expected: 250,
		},
		{
			name:     "Arredonda para duas casas",
			template: &domain.Transaction{Amount: 1000, OccurredAt: start, RecurrenceIntervalMonths: 3},
			month:    time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			expected: 333.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, recurringContribution(tt.template, tt.month))
		})
	}
}

func TestDebtDueWithin(t *testing.T) {
	creditCard := func(paymentDay int) *domain.FinancialAccount {
		return &domain.FinancialAccount{Type: domain.FinancialAccountTypeCreditCard, PaymentDay: intPtr(paymentDay)}
	}

	tests := []struct {
		name     string
		accounts []*domain.FinancialAccount
		from     time.Time
		days     int
		expected bool
	}{
		{
			name:     "Pagamento no dia 28 avaliado no dia 25 de um mês de 31 dias",
			accounts: []*domain.FinancialAccount{creditCard(28)},
			from:     time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC),
			days:     7,
			expected: true,
		},
		{
			name:     "No próprio dia do pagamento",
			accounts: []*domain.FinancialAccount{creditCard(28)},
			from:     time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC),
			days:     7,
			expected: true,
		},
		{
			name:     "Depois do dia 28 rola para o mês seguinte",
			accounts: []*domain.FinancialAccount{creditCard(28)},
			from:     time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC),
			days:     7,
			expected: false,
		},
		{
			name:     "Rolagem encontra o pagamento do mês seguinte em janela longa",
			accounts: []*domain.FinancialAccount{creditCard(28)},
			from:     time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC),
			days:     30,
			expected: true,
		},
		{
			name:     "Dia 31 é limitado a 28",
			accounts: []*domain.FinancialAccount{creditCard(31)},
			from:     time.Date(2025, time.February, 22, 0, 0, 0, 0, time.UTC),
			days:     7,
			expected: true,
		},
		{
			name:     "Virada de ano",
			accounts: []*domain.FinancialAccount{creditCard(2)},
			from:     time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC),
			days:     7,
			expected: true,
		},
		{
			name: "Contas que não são de crédito são ignoradas",
			accounts: []*domain.FinancialAccount{
				{Type: domain.FinancialAccountTypeDebit, PaymentDay: intPtr(26)},
			},
			from:     time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC),
			days:     7,
			expected: false,
		},
		{
			name: "Crédito sem dia de pagamento é ignorado",
			accounts: []*domain.FinancialAccount{
				{Type: domain.FinancialAccountTypeLoan},
			},
			from:     time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC),
			days:     7,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, debtDueWithin(tt.accounts, tt.from, tt.days, 28))
		})
	}
}

func TestNextPaymentDate(t *testing.T) {
	from := time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, time.April, 28, 0, 0, 0, 0, time.UTC), nextPaymentDate(from, 28, 28))
	assert.Equal(t, time.Date(2025, time.March, 29, 0, 0, 0, 0, time.UTC), nextPaymentDate(from, 29, 0))
	assert.Equal(t, time.Date(2025, time.April, 28, 0, 0, 0, 0, time.UTC), nextPaymentDate(from, 31, 28))
}

func TestNextPaymentDate_MesCurtoUsaUltimoDia(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		day      int
		cap      int
		expected time.Time
	}{
		{
			name:     "dia 31 em fevereiro cai no dia 28",
			from:     time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
			day:      31,
			cap:      31,
			expected: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "virada de janeiro para fevereiro em ano bissexto",
			from:     time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC),
			day:      30,
			cap:      0,
			expected: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "dia 31 em abril cai no dia 30",
			from:     time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
			day:      31,
			cap:      31,
			expected: time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextPaymentDate(tt.from, tt.day, tt.cap))
		})
	}
}

func TestWeekdayAverages(t *testing.T) {
	expenses := []*domain.Transaction{
		{Amount: 50, OccurredAt: time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)},
		{Amount: 30, OccurredAt: time.Date(2025, time.March, 3, 18, 0, 0, 0, time.UTC)},
		{Amount: 40, OccurredAt: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)},
		{Amount: 100, OccurredAt: time.Date(2025, time.March, 4, 12, 0, 0, 0, time.UTC)},
	}

	averages := weekdayAverages(expenses, time.UTC)

	assert.Equal(t, 40.0, averages[time.Monday])
	assert.Equal(t, 100.0, averages[time.Tuesday])
	assert.Equal(t, 0.0, averages[time.Sunday])
	assert.Equal(t, [7]float64{}, weekdayAverages(nil, time.UTC))
}

func TestWeekdayAverages_MediaPorDespesa(t *testing.T) {
	// duas despesas na mesma segunda contam separadamente
	expenses := []*domain.Transaction{
		{Amount: 100, OccurredAt: time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)},
		{Amount: 100, OccurredAt: time.Date(2025, time.March, 3, 19, 0, 0, 0, time.UTC)},
		{Amount: 100, OccurredAt: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)},
	}

	averages := weekdayAverages(expenses, time.UTC)

	assert.Equal(t, 100.0, averages[time.Monday])
}

func TestWeekdayAverages_UsesLocation(t *testing.T) {
	mexico := time.FixedZone("CST", -6*60*60)
	// 02:00 UTC de terça ainda é segunda no México
	expenses := []*domain.Transaction{
		{Amount: 80, OccurredAt: time.Date(2025, time.March, 4, 2, 0, 0, 0, time.UTC)},
	}

	averages := weekdayAverages(expenses, mexico)

	assert.Equal(t, 80.0, averages[time.Monday])
	assert.Equal(t, 0.0, averages[time.Tuesday])
}

type collectorMocks struct {
	transactions *mocks.MockTransactionRepository
	accounts     *mocks.MockFinancialAccountRepository
	checkins     *mocks.MockEmotionalCheckinRepository
	pilot        *mocks.MockDailyRecommendationRepository
}

func newCollectorMocks(ctrl *gomock.Controller) *collectorMocks {
	return &collectorMocks{
		transactions: mocks.NewMockTransactionRepository(ctrl),
		accounts:     mocks.NewMockFinancialAccountRepository(ctrl),
		checkins:     mocks.NewMockEmotionalCheckinRepository(ctrl),
		pilot:        mocks.NewMockDailyRecommendationRepository(ctrl),
	}
}

func (m *collectorMocks) collector() *Collector {
	return NewCollector(m.transactions, m.accounts, m.checkins, m.pilot, DefaultThresholds())
}

func TestCollector_Collect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCollectorMocks(ctrl)
	userID := "user-1"
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	yesterday := date.AddDate(0, 0, -1)
	monthStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	yesterdayRecommendation := &domain.DailyRecommendation{ID: "rec-9", State: domain.PilotStateContainment}

	m.transactions.EXPECT().
		MonthAggregates(gomock.Any(), userID, monthStart, monthStart.AddDate(0, 1, 0)).
		Return(&domain.MonthAggregates{Income: 10000, Expense: 2000}, nil)
	m.accounts.EXPECT().
		ListByUser(gomock.Any(), userID).
		Return([]*domain.FinancialAccount{
			{Type: domain.FinancialAccountTypeDebit, OpeningBalance: 5000},
			{Type: domain.FinancialAccountTypeCreditCard, OpeningBalance: 1000, PaymentDay: intPtr(15)},
		}, nil).
		Times(2)
	m.transactions.EXPECT().
		LifetimeNet(gomock.Any(), userID).
		Return(1500.0, nil)
	m.transactions.EXPECT().
		ListRecurringExpenses(gomock.Any(), userID).
		Return([]*domain.Transaction{
			{Amount: 1200, OccurredAt: time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC), RecurrenceIntervalMonths: 3, RecurrenceTotalOccurrences: intPtr(4)},
		}, nil)
	m.transactions.EXPECT().
		ListExpensesBetween(gomock.Any(), userID, date.AddDate(0, 0, -56), date).
		Return([]*domain.Transaction{
			{Amount: 80, OccurredAt: time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)},
		}, nil)
	m.checkins.EXPECT().
		GetByDate(gomock.Any(), userID, date).
		Return(&domain.EmotionalCheckin{Value: "tranquila"}, nil)
	m.pilot.EXPECT().
		GetByUserAndDate(gomock.Any(), userID, yesterday).
		Return(yesterdayRecommendation, nil)
	m.transactions.EXPECT().
		SumExpensesBetween(gomock.Any(), userID, yesterday, date).
		Return(300.0, nil)

	signals := m.collector().Collect(context.Background(), userID, date)

	assert.Equal(t, date, signals.Date)
	assert.Equal(t, 10000.0, signals.IncomeMonth)
	assert.Equal(t, 2000.0, signals.ExpenseMonth)
	assert.Equal(t, 400.0, signals.RecurringExpenseMonth)
	assert.Equal(t, 2400.0, signals.TotalExpenseMonth())
	assert.Equal(t, 5500.0, signals.Margin)
	assert.Equal(t, 80.0, signals.WeekdayAverages[time.Monday])
	assert.True(t, signals.DebtDueSoon)
	assert.Equal(t, "tranquila", *signals.EmotionalCheckin)
	assert.Equal(t, yesterdayRecommendation, signals.YesterdayRecommendation)
	assert.Equal(t, 300.0, signals.YesterdayExpense)
	assert.Empty(t, signals.Degraded)
}

func TestCollector_Collect_DegradesEveryFailedSignal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCollectorMocks(ctrl)
	dbErr := errors.New("connection refused")

	m.transactions.EXPECT().MonthAggregates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
	m.accounts.EXPECT().ListByUser(gomock.Any(), gomock.Any()).Return(nil, dbErr).Times(2)
	m.transactions.EXPECT().ListRecurringExpenses(gomock.Any(), gomock.Any()).Return(nil, dbErr)
	m.transactions.EXPECT().ListExpensesBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
	m.checkins.EXPECT().GetByDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
	m.pilot.EXPECT().GetByUserAndDate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)
	m.transactions.EXPECT().SumExpensesBetween(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, dbErr)

	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	signals := m.collector().Collect(context.Background(), "user-1", date)

	assert.Len(t, signals.Degraded, 8)
	assert.Equal(t, 0.0, signals.Margin)
	assert.Equal(t, 0.0, signals.IncomeMonth)
	assert.Equal(t, [7]float64{}, signals.WeekdayAverages)
	assert.False(t, signals.DebtDueSoon)
	assert.Nil(t, signals.EmotionalCheckin)
	assert.Nil(t, signals.YesterdayRecommendation)

	// mesmo com tudo degradado a classificação termina
	assert.True(t, Classify(signals, DefaultThresholds()).State.IsValid())
}
