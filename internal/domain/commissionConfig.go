package domain

import "time"

type ApplyBase string

const (
	ApplyBaseNetDeposit   ApplyBase = "netDeposit"
	ApplyBaseNetRedeposit ApplyBase = "netRedeposit"
	ApplyBaseComposite    ApplyBase = "composite"
)

// CommissionConfig é o conjunto de regras de pontuação. A linha ativa é a mais recente.
type CommissionConfig struct {
	ID               int       `json:"id"`
	TargetNd         float64   `json:"targetNd"`
	WorkingDays      int       `json:"workingDays"`
	BmNetDeposit     float64   `json:"bmNetDeposit"`
	BmFtdCount       float64   `json:"bmFtdCount"`
	BmFtdAmount      float64   `json:"bmFtdAmount"`
	BmNetRedeposit   float64   `json:"bmNetRedeposit"`
	BmRedepClients   float64   `json:"bmRedepClients"`
	BmCallsPerDay    float64   `json:"bmCallsPerDay"`
	ApplyBase        ApplyBase `json:"applyBase"`
	BandsYour        string    `json:"bandsYour"`
	BandsOpt         string    `json:"bandsOpt"`
	CompositeAnchor  float64   `json:"compositeAnchor"`
	CompositeWeights string    `json:"compositeWeights"`
	LeaderBonusCap   *float64  `json:"leaderBonusCap"`
	DaysElapsed      int       `json:"daysElapsed"`
	DaysInMonth      int       `json:"daysInMonth"`
	CreatedAt        time.Time `json:"createdAt"`
}

type CreateCommissionConfigRequest struct {
	TargetNd         float64  `json:"targetNd" validate:"gte=0"`
	WorkingDays      int      `json:"workingDays" validate:"min=1"`
	BmNetDeposit     float64  `json:"bmNetDeposit" validate:"gte=0"`
	BmFtdCount       float64  `json:"bmFtdCount" validate:"gte=0"`
	BmFtdAmount      float64  `json:"bmFtdAmount" validate:"gte=0"`
	BmNetRedeposit   float64  `json:"bmNetRedeposit" validate:"gte=0"`
	BmRedepClients   float64  `json:"bmRedepClients" validate:"gte=0"`
	BmCallsPerDay    float64  `json:"bmCallsPerDay" validate:"gte=0"`
	ApplyBase        string   `json:"applyBase" validate:"required,oneof=netDeposit netRedeposit composite"`
	BandsYour        string   `json:"bandsYour" validate:"max=500"`
	BandsOpt         string   `json:"bandsOpt" validate:"max=500"`
	CompositeAnchor  float64  `json:"compositeAnchor" validate:"gte=0"`
	CompositeWeights string   `json:"compositeWeights" validate:"max=200"`
	LeaderBonusCap   *float64 `json:"leaderBonusCap" validate:"omitempty,gte=0"`
	DaysElapsed      int      `json:"daysElapsed" validate:"min=0,max=31"`
	DaysInMonth      int      `json:"daysInMonth" validate:"min=1,max=31,gtefield=DaysElapsed"`
}

func (r CreateCommissionConfigRequest) ToConfig() *CommissionConfig {
	return &CommissionConfig{
		TargetNd:         r.TargetNd,
		WorkingDays:      r.WorkingDays,
		BmNetDeposit:     r.BmNetDeposit,
		BmFtdCount:       r.BmFtdCount,
		BmFtdAmount:      r.BmFtdAmount,
		BmNetRedeposit:   r.BmNetRedeposit,
		BmRedepClients:   r.BmRedepClients,
		BmCallsPerDay:    r.BmCallsPerDay,
		ApplyBase:        ApplyBase(r.ApplyBase),
		BandsYour:        r.BandsYour,
		BandsOpt:         r.BandsOpt,
		CompositeAnchor:  r.CompositeAnchor,
		CompositeWeights: r.CompositeWeights,
		LeaderBonusCap:   r.LeaderBonusCap,
		DaysElapsed:      r.DaysElapsed,
		DaysInMonth:      r.DaysInMonth,
	}
}

// Band é um degrau da tabela de comissão: a partir de Threshold pontos paga Rate
type Band struct {
	Threshold float64 `json:"threshold"`
	Rate      float64 `json:"rate"`
}

// ScoringRules são as regras efetivamente aplicadas pelo cálculo depois dos defaults
type ScoringRules struct {
	BandsYour        []Band    `json:"bandsYour"`
	BandsOpt         []Band    `json:"bandsOpt"`
	CompositeWeights []float64 `json:"compositeWeights"`
	WeightsDefaulted bool      `json:"weightsDefaulted"`
	CompositeAnchor  float64   `json:"compositeAnchor"`
	LeaderBonusCap   float64   `json:"leaderBonusCap"`
	WorkingDays      int       `json:"workingDays"`
	DaysElapsed      int       `json:"daysElapsed"`
	DaysInMonth      int       `json:"daysInMonth"`
}

type CommissionConfigResponse struct {
	Config *CommissionConfig `json:"config"`
	Rules  ScoringRules      `json:"rules"`
}
