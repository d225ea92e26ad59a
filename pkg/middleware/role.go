package middleware

import (
	"net/http"
	"slices"

	"github.com/vfg2006/finance-pilot-api/pkg/apiErrors"
	"github.com/vfg2006/finance-pilot-api/pkg/log"
)

const (
	RoleAdmin  = 1
	RoleMember = 2
)

// RoleMiddleware exige que as claims do AuthMiddleware tenham um dos roles informados
func RoleMiddleware(allowedRoles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.RoleID) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"user_id": claims.UserID,
					"role_id": claims.RoleID,
					"path":    r.URL.Path,
				}).Warn("Acesso negado por role")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly protege as rotas operacionais, como o disparo manual de jobs
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin)
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(RoleAdmin, RoleMember)
}
