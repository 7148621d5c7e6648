package handler

import (
	"net/http"

	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/configuring"
	"github.com/vfg2006/commission-dashboard-api/pkg/middleware"
)

func GetCommissionConfig(service configuring.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.GetActive(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}

// CreateCommissionConfig grava uma nova configuração, que passa a ser a ativa
func CreateCommissionConfig(service configuring.ConfigService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCommissionConfigRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		resp, err := service.Create(r.Context(), middleware.ActorFromContext(r.Context()), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, resp)
	}
}
