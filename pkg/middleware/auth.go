package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"

	// SessionCookieName é o cookie gravado no login administrativo
	SessionCookieName = "admin_session"
	LoginPath         = "/login"
)

// sessionActor identifica no contexto quem entrou pelo cookie de sessão
const sessionActor = "admin_session"

// IsAdminPath indica se o caminho pertence à área administrativa
func IsAdminPath(path string) bool {
	return strings.HasPrefix(path, "/admin") || strings.HasPrefix(path, "/v1/admin")
}

// AuthMiddleware protege a área administrativa. Aceita o cookie de sessão ou um bearer token;
// sem nenhum dos dois a requisição é redirecionada para a tela de login.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdminPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if claims, ok := authenticate(authService, r); ok {
				ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Acesso administrativo sem sessão válida")
			http.Redirect(w, r, LoginPath, http.StatusTemporaryRedirect)
		})
	}
}

func authenticate(authService authenticating.Authenticator, r *http.Request) (*domain.Claims, bool) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && authService.ValidateSession(cookie.Value) {
		return &domain.Claims{Username: sessionActor, Role: domain.AdminRole}, true
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, false
	}

	claims, err := authService.ValidateToken(tokenString)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Debug("Bearer token rejeitado")
		return nil, false
	}

	return claims, true
}

// ActorFromContext retorna o usuário autenticado para registro em auditoria
func ActorFromContext(ctx context.Context) string {
	if claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims); ok && claims.Username != "" {
		return claims.Username
	}
	return "system"
}
