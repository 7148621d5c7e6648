package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
	"github.com/vfg2006/commission-dashboard-api/pkg/utils"
)

// SnapshotLister é satisfeito pelo serviço de fotografias de comissão
type SnapshotLister interface {
	ListSnapshots(ctx context.Context, month string) ([]*domain.CommissionSnapshot, error)
}

type SnapshotsResponse struct {
	Month     string                       `json:"month"`
	Snapshots []*domain.CommissionSnapshot `json:"snapshots"`
}

// ListSnapshots retorna as fotografias de ?month=mm-yyyy, ou do mês corrente
func ListSnapshots(service SnapshotLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, err := utils.ParseMonth(r.URL.Query().Get("month"), time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use mm-yyyy", nil)
			return
		}

		formatted := utils.FormatMonth(month)

		snapshots, err := service.ListSnapshots(r.Context(), formatted)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("month", formatted).Error("Erro ao buscar fotografias")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar fotografias de comissão", nil)
			return
		}

		if snapshots == nil {
			snapshots = []*domain.CommissionSnapshot{}
		}

		writeJSON(w, r, http.StatusOK, SnapshotsResponse{Month: formatted, Snapshots: snapshots})
	}
}
