package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/finance-pilot-api/pkg/apiErrors"
)

var (
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrMissingSecret         = errors.New("segredo de autenticação não configurado")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  string // ID do usuário envolvido (quando aplicável)
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// APICode devolve o código da API correspondente ao erro
func (e *AuthError) APICode() string {
	if e.Code != "" {
		return e.Code
	}

	switch {
	case errors.Is(e.Err, ErrExpiredToken):
		return apiErrors.ErrExpiredToken
	case errors.Is(e.Err, ErrInvalidToken):
		return apiErrors.ErrInvalidToken
	case errors.Is(e.Err, ErrInsufficientPrivilege):
		return apiErrors.ErrInsufficientPrivilege
	case errors.Is(e.Err, ErrMissingRequiredData):
		return apiErrors.ErrMissingRequiredData
	}
	return apiErrors.ErrInternalServer
}

// IsAuthorizationError verifica se o erro está relacionado a problemas de autorização
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken)
}
