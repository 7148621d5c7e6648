package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/commission-dashboard-api/internal/scheduler"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshot = "snapshot"
	CronJobTypePace     = "pace"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CommissionSnapshotService scheduler.Job
	PaceCalendarService       scheduler.Job
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshot:
			if services.CommissionSnapshotService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de fotografia de comissões não disponível", nil)
				return
			}
			services.CommissionSnapshotService.TriggerManualSync()

		case CronJobTypePace:
			if services.PaceCalendarService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de calendário de ritmo não disponível", nil)
				return
			}
			services.PaceCalendarService.TriggerManualSync()

		case CronJobTypeAll:
			// o calendário precisa estar gravado antes da fotografia calcular o ritmo
			go scheduler.RunInOrder(context.Background(), services.PaceCalendarService, services.CommissionSnapshotService)

		default:
			apiErrors.WriteError(w, apiErrors.ErrJobNotFound, "Tipo de cron job inválido. Valores aceitos: snapshot, pace, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("job", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.CommissionSnapshotService != nil {
			status[CronJobTypeSnapshot] = services.CommissionSnapshotService.GetStatus()
		}
		if services.PaceCalendarService != nil {
			status[CronJobTypePace] = services.PaceCalendarService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
