// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type Agent struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	IsLeader  bool      `json:"isLeader"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// AgentWithKPI é um agente ativo acompanhado do seu lançamento de KPI mais recente.
// KPI é nil quando o agente ainda não possui lançamento.
type AgentWithKPI struct {
	Agent
	KPI *AgentKpi `json:"kpi"`
}

type CreateAgentRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	IsLeader bool   `json:"isLeader"`
	Active   *bool  `json:"active"`
}

type UpdateAgentRequest struct {
	ID       int     `json:"-"`
	Name     *string `json:"name" validate:"omitempty,min=1,max=120"`
	IsLeader *bool   `json:"isLeader"`
	Active   *bool   `json:"active"`
}
