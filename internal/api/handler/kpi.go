package handler

import (
	"net/http"

	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/kpi"
	"github.com/vfg2006/commission-dashboard-api/pkg/middleware"
)

type SaveKPIResponse struct {
	OK bool `json:"ok"`
	*kpi.SaveResult
}

// SaveKPIRows grava as linhas enviadas pela grade do painel
func SaveKPIRows(service kpi.KPIService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SaveKPIRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		result, err := service.SaveRows(r.Context(), middleware.ActorFromContext(r.Context()), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, SaveKPIResponse{OK: true, SaveResult: result})
	}
}
