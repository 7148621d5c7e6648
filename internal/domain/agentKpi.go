package domain

import "time"

type AgentKpi struct {
	ID               int       `json:"id"`
	AgentID          int       `json:"agentId"`
	NetDeposit       float64   `json:"netDeposit"`
	FtdCount         int       `json:"ftdCount"`
	NetRedeposit     float64   `json:"netRedeposit"`
	FtdAmount        float64   `json:"ftdAmount"`
	RedepositClients int       `json:"redepositClients"`
	CallsMonth       int       `json:"callsMonth"`
	CallsAvg         float64   `json:"callsAvg"`
	MgrBonus         float64   `json:"mgrBonus"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// KPIRow é uma linha da grade de edição do painel administrativo.
// KpiID nulo ou zero cria um novo lançamento para o agente.
type KPIRow struct {
	AgentID          int     `json:"agentId" validate:"required,gt=0"`
	KpiID            *int    `json:"kpiId" validate:"omitempty,gte=0"`
	NetDeposit       float64 `json:"netDeposit"`
	FtdCount         int     `json:"ftdCount"`
	NetRedeposit     float64 `json:"netRedeposit"`
	FtdAmount        float64 `json:"ftdAmount"`
	RedepositClients int     `json:"redepositClients"`
	CallsMonth       int     `json:"callsMonth"`
	CallsAvg         float64 `json:"callsAvg"`
	MgrBonus         float64 `json:"mgrBonus"`
}

type SaveKPIRequest struct {
	Rows []KPIRow `json:"rows" validate:"required,dive"`
}

// ToAgentKpi converte a linha recebida no lançamento persistido
func (r KPIRow) ToAgentKpi() *AgentKpi {
	kpi := &AgentKpi{
		AgentID:          r.AgentID,
		NetDeposit:       r.NetDeposit,
		FtdCount:         r.FtdCount,
		NetRedeposit:     r.NetRedeposit,
		FtdAmount:        r.FtdAmount,
		RedepositClients: r.RedepositClients,
		CallsMonth:       r.CallsMonth,
		CallsAvg:         r.CallsAvg,
		MgrBonus:         r.MgrBonus,
	}

	if r.KpiID != nil {
		kpi.ID = *r.KpiID
	}

	return kpi
}
