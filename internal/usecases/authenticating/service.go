package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/finance-pilot-api/internal/config"
	"github.com/vfg2006/finance-pilot-api/internal/domain"
)

// Authenticator valida os tokens emitidos pelo provedor de identidade.
// GenerateToken existe para ferramentas internas e testes.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateToken(member *domain.Member, ttl time.Duration) (string, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) GenerateToken(member *domain.Member, ttl time.Duration) (string, error) {
	if member == nil || member.UserID == "" {
		return "", &AuthError{Err: ErrMissingRequiredData, Details: "usuário obrigatório"}
	}
	if s.cfg.Auth.Secret == "" {
		return "", &AuthError{Err: ErrMissingSecret}
	}

	now := time.Now()
	claims := &domain.Claims{
		UserID: member.UserID,
		OrgID:  member.OrgID,
		RoleID: member.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   member.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, &AuthError{Err: ErrExpiredToken, Details: err.Error()}
		}
		return nil, &AuthError{Err: ErrInvalidToken, Details: err.Error()}
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, &AuthError{Err: ErrInvalidToken}
	}

	// tokens antigos trazem o usuário só no subject
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, &AuthError{Err: ErrInvalidToken, Details: "token sem usuário"}
	}

	return claims, nil
}
