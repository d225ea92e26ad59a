// Package migration aplica o schema do banco usando goose com os scripts embarcados
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

const (
	migrationsDir   = "sql"
	migrationsTable = "schema_migrations"
)

// Comandos suportados
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStatus  = "status"
	CommandVersion = "version"
)

// gooseLogger encaminha as mensagens do goose para o logrus
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	logrus.Infof(format, v...)
}

func (gooseLogger) Fatalf(format string, v ...any) {
	logrus.Errorf(format, v...)
}

func setup() error {
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{})
	goose.SetTableName(migrationsTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("erro ao configurar dialeto do goose: %w", err)
	}

	return nil
}

// Run executa um comando do goose sobre os scripts embarcados
func Run(ctx context.Context, db *sql.DB, command string) error {
	if err := setup(); err != nil {
		return err
	}

	logrus.WithField("command", command).Info("Executando migrações")

	var err error
	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, db, migrationsDir)
	case CommandDown:
		err = goose.DownContext(ctx, db, migrationsDir)
	case CommandStatus:
		err = goose.StatusContext(ctx, db, migrationsDir)
	case CommandVersion:
		err = goose.VersionContext(ctx, db, migrationsDir)
	default:
		return fmt.Errorf("comando de migração desconhecido: %s", command)
	}
	if err != nil {
		return fmt.Errorf("erro ao executar migração %s: %w", command, err)
	}

	return nil
}

// Up aplica todas as migrações pendentes
func Up(ctx context.Context, db *sql.DB) error {
	return Run(ctx, db, CommandUp)
}
