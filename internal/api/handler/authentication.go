package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
	"github.com/vfg2006/commission-dashboard-api/pkg/metrics"
	"github.com/vfg2006/commission-dashboard-api/pkg/middleware"
)

const invalidCredentialsMessage = "Invalid credentials"

// Login valida as credenciais administrativas, grava o cookie de sessão e devolve o bearer token
func Login(service authenticating.Authenticator, m *metrics.Metrics, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			m.IncLoginAttempt(metrics.ResultFailure)
			writeJSON(w, r, http.StatusBadRequest, domain.LoginResponse{OK: false, Error: "Invalid request"})
			return
		}

		session, err := service.Login(req.Username, req.Password)
		if err != nil {
			m.IncLoginAttempt(metrics.ResultFailure)
			handleLoginError(w, r, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    session.Cookie,
			Path:     "/",
			MaxAge:   int(session.MaxAge.Seconds()),
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		m.IncLoginAttempt(metrics.ResultSuccess)
		log.ForContext(r.Context()).Info("Login administrativo realizado")

		writeJSON(w, r, http.StatusOK, domain.LoginResponse{OK: true, Token: session.Token})
	}
}

// Logout remove o cookie de sessão
func Logout(secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, r, http.StatusOK, domain.LoginResponse{OK: true})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case authenticating.IsCredentialsError(err):
		log.ForContext(r.Context()).WithField("ip", middleware.ClientIP(r)).Warn("Tentativa de login com credenciais inválidas")
		writeJSON(w, r, http.StatusUnauthorized, domain.LoginResponse{OK: false, Error: invalidCredentialsMessage})

	case errors.Is(err, authenticating.ErrSessionNotConfigured):
		log.ForContext(r.Context()).Error("ADMIN_SESSION_TOKEN não configurado")
		apiErrors.WriteError(w, apiErrors.ErrSessionNotConfigured, "Sessão administrativa não configurada", nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro interno ao realizar login")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
