package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Member é um usuário ativo dentro de uma organização
type Member struct {
	UserID string `json:"user_id"`
	OrgID  string `json:"org_id"`
	RoleID int    `json:"role_id"`
}

// Claims são emitidas pelo serviço de autenticação externo
type Claims struct {
	UserID string `json:"uid"`
	OrgID  string `json:"org"`
	RoleID int    `json:"role"`
	jwt.RegisteredClaims
}
