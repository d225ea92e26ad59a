package pilot

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/finance-pilot-api/infrastructure/repository"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
	"github.com/vfg2006/finance-pilot-api/pkg/log"
	"github.com/vfg2006/finance-pilot-api/pkg/utils"
)

// Nomes dos sinais, usados nos logs de degradação
const (
	signalMonthAggregates   = "month_aggregates"
	signalBalance           = "balance"
	signalRecurringTotal    = "recurring_total"
	signalWeekdayAverages   = "weekday_averages"
	signalDebtDue           = "debt_due"
	signalEmotionalCheckin  = "emotional_checkin"
	signalYesterdayPilot    = "yesterday_recommendation"
	signalYesterdayExpenses = "yesterday_expense"
)

type SignalCollector interface {
	Collect(ctx context.Context, userID string, date time.Time) *Signals
}

type Collector struct {
	transactionRepository repository.TransactionRepository
	accountRepository     repository.FinancialAccountRepository
	checkinRepository     repository.EmotionalCheckinRepository
	pilotRepository       repository.DailyRecommendationRepository
	thresholds            Thresholds
}

func NewCollector(
	transactionRepository repository.TransactionRepository,
	accountRepository repository.FinancialAccountRepository,
	checkinRepository repository.EmotionalCheckinRepository,
	pilotRepository repository.DailyRecommendationRepository,
	thresholds Thresholds,
) *Collector {
	return &Collector{
		transactionRepository: transactionRepository,
		accountRepository:     accountRepository,
		checkinRepository:     checkinRepository,
		pilotRepository:       pilotRepository,
		thresholds:            thresholds,
	}
}

// Collect dispara todas as leituras em paralelo e espera todas terminarem.
// Nenhuma falha interrompe a coleta: o sinal afetado fica com o valor neutro.
func (c *Collector) Collect(ctx context.Context, userID string, date time.Time) *Signals {
	date = utils.StartOfDay(date)
	monthStart := utils.FirstDayOfMonth(date)
	monthEnd := monthStart.AddDate(0, 1, 0)
	yesterday := date.AddDate(0, 0, -1)

	if c.thresholds.SignalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.thresholds.SignalTimeout)
		defer cancel()
	}

	signals := &Signals{Date: date}

	var mu sync.Mutex
	degrade := func(name string, err error) {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"user_id": userID,
			"signal":  name,
			"date":    date.Format(time.DateOnly),
		}).Warn("Falha ao ler sinal do piloto, usando valor padrão")

		mu.Lock()
		signals.Degraded = append(signals.Degraded, name)
		mu.Unlock()
	}

	var wg sync.WaitGroup
	wg.Add(8)

	go func() {
		defer wg.Done()
		aggregates, err := c.MonthAggregates(ctx, userID, monthStart, monthEnd)
		if err != nil {
			degrade(signalMonthAggregates, err)
			return
		}
		signals.IncomeMonth = aggregates.Income
		signals.ExpenseMonth = aggregates.Expense
	}()

	go func() {
		defer wg.Done()
		margin, err := c.Balance(ctx, userID)
		if err != nil {
			degrade(signalBalance, err)
			return
		}
		signals.Margin = margin
	}()

	go func() {
		defer wg.Done()
		total, err := c.RecurringMonthlyTotal(ctx, userID, monthStart)
		if err != nil {
			degrade(signalRecurringTotal, err)
			return
		}
		signals.RecurringExpenseMonth = total
	}()

	go func() {
		defer wg.Done()
		averages, err := c.AverageExpenseByWeekday(ctx, userID, date, c.thresholds.WeekdayLookbackDays)
		if err != nil {
			degrade(signalWeekdayAverages, err)
			return
		}
		signals.WeekdayAverages = averages
	}()

	go func() {
		defer wg.Done()
		due, err := c.DebtDueWithinDays(ctx, userID, date, c.thresholds.DebtWindowDays)
		if err != nil {
			degrade(signalDebtDue, err)
			return
		}
		signals.DebtDueSoon = due
	}()

	go func() {
		defer wg.Done()
		checkin, err := c.EmotionalCheckin(ctx, userID, date)
		if err != nil {
			degrade(signalEmotionalCheckin, err)
			return
		}
		signals.EmotionalCheckin = checkin
	}()

	go func() {
		defer wg.Done()
		recommendation, err := c.YesterdayRecommendation(ctx, userID, yesterday)
		if err != nil {
			degrade(signalYesterdayPilot, err)
			return
		}
		signals.YesterdayRecommendation = recommendation
	}()

	go func() {
		defer wg.Done()
		expense, err := c.YesterdayExpense(ctx, userID, yesterday)
		if err != nil {
			degrade(signalYesterdayExpenses, err)
			return
		}
		signals.YesterdayExpense = expense
	}()

	wg.Wait()

	return signals
}

func (c *Collector) MonthAggregates(ctx context.Context, userID string, monthStart, monthEnd time.Time) (*domain.MonthAggregates, error) {
	aggregates, err := c.transactionRepository.MonthAggregates(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	if aggregates == nil {
		return &domain.MonthAggregates{}, nil
	}

	return aggregates, nil
}

// Balance soma os saldos iniciais das contas (crédito entra negativo) ao líquido histórico
// de receitas e despesas. Não é recortado pelo mês.
func (c *Collector) Balance(ctx context.Context, userID string) (float64, error) {
	accounts, err := c.accountRepository.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	net, err := c.transactionRepository.LifetimeNet(ctx, userID)
	if err != nil {
		return 0, err
	}

	return utils.RoundCents(accountsBalance(accounts) + net), nil
}

// RecurringMonthlyTotal normaliza os modelos recorrentes de despesa para o mês informado
func (c *Collector) RecurringMonthlyTotal(ctx context.Context, userID string, month time.Time) (float64, error) {
	templates, err := c.transactionRepository.ListRecurringExpenses(ctx, userID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, template := range templates {
		total += recurringContribution(template, month)
	}

	return utils.RoundCents(total), nil
}

func (c *Collector) DebtDueWithinDays(ctx context.Context, userID string, from time.Time, days int) (bool, error) {
	accounts, err := c.accountRepository.ListByUser(ctx, userID)
	if err != nil {
		return false, err
	}

	return debtDueWithin(accounts, from, days, c.thresholds.DebtPaymentDayCap), nil
}

// AverageExpenseByWeekday olha daysBack dias para trás a partir de from (exclusivo)
func (c *Collector) AverageExpenseByWeekday(ctx context.Context, userID string, from time.Time, daysBack int) ([7]float64, error) {
	start := from.AddDate(0, 0, -daysBack)

	expenses, err := c.transactionRepository.ListExpensesBetween(ctx, userID, start, from)
	if err != nil {
		return [7]float64{}, err
	}

	return weekdayAverages(expenses, from.Location()), nil
}

func (c *Collector) EmotionalCheckin(ctx context.Context, userID string, date time.Time) (*string, error) {
	checkin, err := c.checkinRepository.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if checkin == nil {
		return nil, nil
	}

	value := checkin.Value
	return &value, nil
}

func (c *Collector) YesterdayRecommendation(ctx context.Context, userID string, yesterday time.Time) (*domain.DailyRecommendation, error) {
	return c.pilotRepository.GetByUserAndDate(ctx, userID, yesterday)
}

func (c *Collector) YesterdayExpense(ctx context.Context, userID string, yesterday time.Time) (float64, error) {
	return c.transactionRepository.SumExpensesBetween(ctx, userID, yesterday, yesterday.AddDate(0, 0, 1))
}

func accountsBalance(accounts []*domain.FinancialAccount) float64 {
	var balance float64
	for _, account := range accounts {
		if account.Type.IsCredit() {
			balance -= account.OpeningBalance
			continue
		}
		balance += account.OpeningBalance
	}
	return balance
}

// recurringContribution devolve amount/interval arredondado, ou zero quando o modelo
// ainda não começou ou já passou do total de ocorrências.
func recurringContribution(template *domain.Transaction, month time.Time) float64 {
	interval := template.RecurrenceIntervalMonths
	if interval < 1 {
		interval = 1
	}

	elapsed := utils.MonthsBetween(template.OccurredAt.In(month.Location()), month)
	if elapsed < 0 {
		return 0
	}

	occurrence := elapsed/interval + 1
	if template.RecurrenceTotalOccurrences != nil && occurrence > *template.RecurrenceTotalOccurrences {
		return 0
	}

	return utils.RoundCents(template.Amount / float64(interval))
}

func debtDueWithin(accounts []*domain.FinancialAccount, from time.Time, days int, paymentDayCap int) bool {
	from = utils.StartOfDay(from)

	for _, account := range accounts {
		if !account.Type.IsCredit() || account.PaymentDay == nil {
			continue
		}

		due := nextPaymentDate(from, *account.PaymentDay, paymentDayCap)
		if daysBetween(from, due) <= days {
			return true
		}
	}

	return false
}

// nextPaymentDate é a próxima ocorrência do dia de pagamento em ou depois de from.
// Em meses curtos o vencimento cai no último dia do mês.
func nextPaymentDate(from time.Time, paymentDay int, paymentDayCap int) time.Time {
	if paymentDayCap > 0 && paymentDay > paymentDayCap {
		paymentDay = paymentDayCap
	}
	if paymentDay < 1 {
		paymentDay = 1
	}

	candidate := paymentDateIn(from.Year(), from.Month(), paymentDay, from.Location())
	if candidate.Before(from) {
		candidate = paymentDateIn(from.Year(), from.Month()+1, paymentDay, from.Location())
	}

	return candidate
}

func paymentDateIn(year int, month time.Month, day int, loc *time.Location) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

// daysBetween conta dias de calendário, imune a horário de verão
func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// weekdayAverages é a média do valor de cada despesa por dia da semana
func weekdayAverages(expenses []*domain.Transaction, loc *time.Location) [7]float64 {
	var sums [7]float64
	var counts [7]int
	for _, expense := range expenses {
		weekday := expense.OccurredAt.In(loc).Weekday()
		sums[weekday] += expense.Amount
		counts[weekday]++
	}

	var averages [7]float64
	for i := range averages {
		if counts[i] > 0 {
			averages[i] = utils.RoundCents(sums[i] / float64(counts[i]))
		}
	}

	return averages
}
