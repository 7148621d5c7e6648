package handler

import (
	"net/http"

	"github.com/vfg2006/commission-dashboard-api/internal/usecases/dashboard"
)

// GetDashboard retorna a visão somente leitura da equipe
func GetDashboard(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.GetDashboard(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

// GetAdminPanel retorna a grade editável do painel administrativo
func GetAdminPanel(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.GetAdminPanel(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}
