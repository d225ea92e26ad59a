// Ferramenta de manutenção do banco: migrações, carga de dados de demonstração e tokens de teste.
//
// Uso:
//
//	go run ./infrastructure/migration/script migrate up|down|status|version
//	go run ./infrastructure/migration/script seed
//	go run ./infrastructure/migration/script token -user <id> -org <id> -role 2 -ttl 24h
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/finance-pilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/finance-pilot-api/infrastructure/migration"
	"github.com/vfg2006/finance-pilot-api/internal/config"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
	"github.com/vfg2006/finance-pilot-api/internal/usecases/authenticating"
	"github.com/vfg2006/finance-pilot-api/pkg/log"
	"github.com/vfg2006/finance-pilot-api/pkg/utils"
)

const demoOrgID = "demo-org"

type seedUser struct {
	ID     string
	RoleID int
}

type seedAccount struct {
	Name           string
	Type           domain.FinancialAccountType
	OpeningBalance float64
	PaymentDay     *int
}

type seedTransaction struct {
	Kind             domain.TransactionKind
	Amount           float64
	DaysAgo          int
	Recurring        bool
	IntervalMonths   int
	TotalOccurrences *int
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "migrate":
		command := migration.CommandUp
		if len(os.Args) > 2 {
			command = os.Args[2]
		}
		conn := connect(ctx, cfg)
		defer conn.Close()

		if err := migration.Run(ctx, conn.DB, command); err != nil {
			logrus.WithError(err).Fatal("Erro ao executar migração")
		}
	case "seed":
		conn := connect(ctx, cfg)
		defer conn.Close()

		if err := migration.Up(ctx, conn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		if err := seed(ctx, conn, cfg.App.Location); err != nil {
			logrus.WithError(err).Fatal("Erro na carga de demonstração")
		}
	case "token":
		if err := printToken(cfg, os.Args[2:]); err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar token")
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: script migrate [up|down|status|version] | seed | token -user <id> [-org <id>] [-role <n>] [-ttl <duração>]")
}

func connect(ctx context.Context, cfg *config.Config) *postgres.Connection {
	logrus.Info("Conectando ao banco de dados...")

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}

func printToken(cfg *config.Config, args []string) error {
	flags := flag.NewFlagSet("token", flag.ContinueOnError)
	userID := flags.String("user", "", "id do usuário")
	orgID := flags.String("org", demoOrgID, "id da organização")
	roleID := flags.Int("role", 2, "role do usuário (1 admin, 2 membro)")
	ttl := flags.Duration("ttl", 24*time.Hour, "validade do token")
	if err := flags.Parse(args); err != nil {
		return err
	}

	token, err := authenticating.NewService(cfg).GenerateToken(&domain.Member{
		UserID: *userID,
		OrgID:  *orgID,
		RoleID: *roleID,
	}, *ttl)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

// seed cria um administrador e um membro com contas e um mês de movimentações
func seed(ctx context.Context, conn *postgres.Connection, loc *time.Location) error {
	startTime := time.Now()
	today := utils.StartOfDay(time.Now().In(loc))
	paymentDay := today.AddDate(0, 0, 3).Day()
	installments := 12

	users := []seedUser{
		{ID: "demo-admin", RoleID: 1},
		{ID: "demo-member", RoleID: 2},
	}

	accounts := []seedAccount{
		{Name: "Cuenta de nómina", Type: domain.FinancialAccountTypeDebit, OpeningBalance: 4200},
		{Name: "Efectivo", Type: domain.FinancialAccountTypeCash, OpeningBalance: 600},
		{Name: "Tarjeta de crédito", Type: domain.FinancialAccountTypeCreditCard, OpeningBalance: 1800, PaymentDay: &paymentDay},
	}

	transactions := []seedTransaction{
		{Kind: domain.TransactionKindIncome, Amount: 9000, DaysAgo: 10},
		{Kind: domain.TransactionKindExpense, Amount: 350, DaysAgo: 9},
		{Kind: domain.TransactionKindExpense, Amount: 1200, DaysAgo: 7},
		{Kind: domain.TransactionKindExpense, Amount: 480, DaysAgo: 5},
		{Kind: domain.TransactionKindExpense, Amount: 220, DaysAgo: 2},
		{Kind: domain.TransactionKindExpense, Amount: 150, DaysAgo: 1},
		{Kind: domain.TransactionKindExpense, Amount: 2400, DaysAgo: 40, Recurring: true, IntervalMonths: 1},
		{Kind: domain.TransactionKindExpense, Amount: 3600, DaysAgo: 70, Recurring: true, IntervalMonths: 1, TotalOccurrences: &installments},
	}

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, u := range users {
			if err := insertUser(ctx, tx, u); err != nil {
				return err
			}
		}

		member := users[1]
		var primaryAccountID string
		for i, a := range accounts {
			id, err := insertAccount(ctx, tx, member.ID, a)
			if err != nil {
				return err
			}
			if i == 0 {
				primaryAccountID = id
			}
		}

		for _, t := range transactions {
			if err := insertTransaction(ctx, tx, member.ID, primaryAccountID, today, t); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"users":        len(users),
		"accounts":     len(accounts),
		"transactions": len(transactions),
		"duration":     time.Since(startTime).String(),
	}).Info("Carga de demonstração concluída")

	return nil
}

func insertUser(ctx context.Context, tx postgres.Queryer, u seedUser) error {
	query, args, err := squirrel.
		Insert("users").
		Columns("id", "org_id", "active", "role_id").
		Values(u.ID, demoOrgID, true, u.RoleID).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir insert de usuário")
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "erro ao inserir usuário %s", u.ID)
	}

	return nil
}

func insertAccount(ctx context.Context, tx postgres.Queryer, userID string, a seedAccount) (string, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar id da conta")
	}

	query, args, err := squirrel.
		Insert("financial_accounts").
		Columns("id", "user_id", "name", "type", "opening_balance", "payment_day").
		Values(id, userID, a.Name, a.Type, a.OpeningBalance, a.PaymentDay).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", errors.Wrap(err, "erro ao construir insert de conta")
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return "", errors.Wrapf(err, "erro ao inserir conta %s", a.Name)
	}

	return id, nil
}

func insertTransaction(ctx context.Context, tx postgres.Queryer, userID, accountID string, today time.Time, t seedTransaction) error {
	id, err := utils.GenerateID()
	if err != nil {
		return errors.Wrap(err, "erro ao gerar id da transação")
	}

	interval := t.IntervalMonths
	if interval < 1 {
		interval = 1
	}

	query, args, err := squirrel.
		Insert("transactions").
		Columns(
			"id",
			"user_id",
			"account_id",
			"kind",
			"amount",
			"occurred_at",
			"is_recurring",
			"recurrence_interval_months",
			"recurrence_total_occurrences",
		).
		Values(id, userID, accountID, t.Kind, t.Amount, today.AddDate(0, 0, -t.DaysAgo), t.Recurring, interval, t.TotalOccurrences).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir insert de transação")
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao inserir transação")
	}

	return nil
}
