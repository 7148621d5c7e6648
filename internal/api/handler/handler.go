package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/agent"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/configuring"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/kpi"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta com o status informado
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeJSON decodifica o corpo e já responde VAL_001 em caso de erro
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Debug("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}
	return true
}

// writeServiceError traduz os erros tipados dos casos de uso para o envelope da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		kpiErr    *kpi.KPIError
		configErr *configuring.ConfigError
		agentErr  *agent.AgentError
		authErr   *authenticating.AuthError
	)

	switch {
	case errors.As(err, &kpiErr):
		apiErrors.WriteError(w, kpiErr.Code, kpiErr.Err.Error(), kpiErr.Details)
	case errors.As(err, &configErr):
		apiErrors.WriteError(w, configErr.Code, configErr.Err.Error(), configErr.Details)
	case errors.As(err, &agentErr):
		details := agentErr.Details
		if agentErr.AgentID != 0 {
			details = map[string]any{"agent_id": agentErr.AgentID, "details": agentErr.Details}
		}
		apiErrors.WriteError(w, agentErr.Code, agentErr.Err.Error(), details)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
	case errors.Is(err, dashboard.ErrConfigNotFound), errors.Is(err, configuring.ErrConfigNotFound):
		apiErrors.WriteError(w, apiErrors.ErrConfigNotFound, "No commission configuration found.", nil)
	case errors.Is(err, dashboard.ErrFetchData):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar dados", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
