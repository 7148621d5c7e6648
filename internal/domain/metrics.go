package domain

type PaceStatus string

const (
	PaceStatusOnPace PaceStatus = "On pace"
	PaceStatusBehind PaceStatus = "Behind"
)

type CallsStatus string

const (
	CallsStatusOK    CallsStatus = "OK"
	CallsStatusBelow CallsStatus = "Below"
)

// AgentMetrics é o resultado do cálculo de comissão de um agente
type AgentMetrics struct {
	Agent       Agent       `json:"agent"`
	KPI         *AgentKpi   `json:"kpi"`
	TargetNd    float64     `json:"targetNd"`
	AchievedNd  float64     `json:"achievedNd"`
	PctTarget   float64     `json:"pctTarget"`
	NdPts       float64     `json:"ndPts"`
	FtdPts      float64     `json:"ftdPts"`
	RetPts      float64     `json:"retPts"`
	CallsPts    float64     `json:"callsPts"`
	MgrBonus    float64     `json:"mgrBonus"`
	Score       float64     `json:"score"` // sempre inteiro (teto da soma)
	YourPct     float64     `json:"yourPct"`
	YourComm    float64     `json:"yourComm"`
	OptPct      float64     `json:"optPct"`
	OptComm     float64     `json:"optComm"`
	ProjectedNd float64     `json:"projectedNd"`
	PaceStatus  PaceStatus  `json:"paceStatus"`
	CallsStatus CallsStatus `json:"callsStatus"`
}

type TeamSummary struct {
	TeamTarget     float64 `json:"teamTarget"`
	TeamAchieved   float64 `json:"teamAchieved"`
	AvgScore       float64 `json:"avgScore"`
	TotalYourComm  float64 `json:"totalYourComm"`
	TotalOptComm   float64 `json:"totalOptComm"`
	TotalProjected float64 `json:"totalProjected"`
}

type MetricsResult struct {
	AgentMetrics []AgentMetrics `json:"agentMetrics"`
	Team         TeamSummary    `json:"team"`
}

type DashboardResponse struct {
	Config       *CommissionConfig `json:"config"`
	AgentMetrics []AgentMetrics    `json:"agentMetrics"`
	Team         TeamSummary       `json:"team"`
}

// AdminPanelRow junta os valores editáveis do KPI com os pontos calculados (somente leitura)
type AdminPanelRow struct {
	AgentID          int     `json:"agentId"`
	KpiID            *int    `json:"kpiId"`
	Name             string  `json:"name"`
	IsLeader         bool    `json:"isLeader"`
	NetDeposit       float64 `json:"netDeposit"`
	FtdCount         int     `json:"ftdCount"`
	NetRedeposit     float64 `json:"netRedeposit"`
	FtdAmount        float64 `json:"ftdAmount"`
	RedepositClients int     `json:"redepositClients"`
	CallsMonth       int     `json:"callsMonth"`
	CallsAvg         float64 `json:"callsAvg"`
	MgrBonus         float64 `json:"mgrBonus"`
	NdPts            float64 `json:"ndPts"`
	FtdPts           float64 `json:"ftdPts"`
	RetPts           float64 `json:"retPts"`
	CallsPts         float64 `json:"callsPts"`
	Score            float64 `json:"score"`
}

type AdminPanelResponse struct {
	Rows      []AdminPanelRow `json:"rows"`
	Team      TeamSummary     `json:"team"`
	TargetNd  float64         `json:"targetNd"`
	BandsYour string          `json:"bandsYour"`
	BandsOpt  string          `json:"bandsOpt"`
	Rules     ScoringRules    `json:"rules"`
}
