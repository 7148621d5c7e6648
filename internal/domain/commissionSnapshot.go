package domain

import "time"

// CommissionSnapshot é a fotografia mensal do resultado de um agente (mês no formato mm-yyyy)
type CommissionSnapshot struct {
	ID          int        `json:"id"`
	AgentID     int        `json:"agentId"`
	AgentName   string     `json:"agentName"`
	Month       string     `json:"month"`
	RunID       string     `json:"runId"`
	AchievedNd  float64    `json:"achievedNd"`
	PctTarget   float64    `json:"pctTarget"`
	Score       float64    `json:"score"`
	YourComm    float64    `json:"yourComm"`
	OptComm     float64    `json:"optComm"`
	ProjectedNd float64    `json:"projectedNd"`
	PaceStatus  PaceStatus `json:"paceStatus"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewCommissionSnapshot monta a fotografia a partir das métricas calculadas
func NewCommissionSnapshot(m AgentMetrics, month, runID string) *CommissionSnapshot {
	return &CommissionSnapshot{
		AgentID:     m.Agent.ID,
		AgentName:   m.Agent.Name,
		Month:       month,
		RunID:       runID,
		AchievedNd:  m.AchievedNd,
		PctTarget:   m.PctTarget,
		Score:       m.Score,
		YourComm:    m.YourComm,
		OptComm:     m.OptComm,
		ProjectedNd: m.ProjectedNd,
		PaceStatus:  m.PaceStatus,
	}
}
