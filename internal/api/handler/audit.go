package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/commission-dashboard-api/internal/usecases/auditing"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
)

// ListAuditNotes retorna as notas mais recentes; ?limit= é limitado pelo serviço
func ListAuditNotes(service auditing.AuditService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			var err error
			limit, err = strconv.Atoi(limitStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
		}

		notes, err := service.ListNotes(r.Context(), limit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar notas de auditoria", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, notes)
	}
}
