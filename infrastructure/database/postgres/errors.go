package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Códigos de erro do PostgreSQL
const (
	uniqueViolationCode     pq.ErrorCode = "23505"
	foreignKeyViolationCode pq.ErrorCode = "23503"
	checkViolationCode      pq.ErrorCode = "23514"
)

var (
	ErrUniqueViolation = errors.New("registro já existe")
	ErrInvalidEntity   = errors.New("entidade inválida")
)

// MapError converte erros do driver em erros de domínio, preservando o original
func MapError(err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w (%s): %v", ErrUniqueViolation, pqErr.Constraint, err)
		case foreignKeyViolationCode, checkViolationCode:
			return fmt.Errorf("%w (%s): %v", ErrInvalidEntity, pqErr.Constraint, err)
		}
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}

	return err
}

// IsUniqueViolation indica violação de constraint UNIQUE, mapeada ou não
func IsUniqueViolation(err error) bool {
	if errors.Is(err, ErrUniqueViolation) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}
