package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/agent"
	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/commission-dashboard-api/pkg/middleware"
)

func ListAgents(service agent.AgentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agents, err := service.ListAgents(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, agents)
	}
}

func CreateAgent(service agent.AgentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateAgentRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		created, err := service.CreateAgent(r.Context(), middleware.ActorFromContext(r.Context()), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

// UpdateAgent altera nome, liderança ou situação de um agente
func UpdateAgent(service agent.AgentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		agentIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if agentIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do agente não fornecido", nil)
			return
		}

		agentID, err := strconv.Atoi(agentIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do agente inválido", nil)
			return
		}

		var req domain.UpdateAgentRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.ID = agentID

		updated, err := service.UpdateAgent(r.Context(), middleware.ActorFromContext(r.Context()), &req)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}
