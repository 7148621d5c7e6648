// Package scoring calcula pontuação, comissão e ritmo dos agentes a partir da configuração ativa.
// O cálculo é puro: não faz I/O e nunca retorna erro, toda degradação é numérica.
package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/vfg2006/commission-dashboard-api/internal/domain"
)

const (
	DefaultWorkingDays     = 22
	DefaultDaysInMonth     = 30
	DefaultCompositeAnchor = 300000.0
	DefaultLeaderBonusCap  = 1.0

	maxNdPts       = 50.0
	maxFtdPts      = 20.0
	maxRetAmtPts   = 10.0
	maxRetCountPts = 10.0
	maxCallsPts    = 10.0

	weightCount = 5
)

// DefaultCompositeWeights pesos de {FTD valor, FTD qtd, retenção valor, retenção qtd, ligações}
var DefaultCompositeWeights = []float64{20, 20, 20, 20, 20}

// EffectiveRules resolve as regras aplicadas pelo cálculo, já com defaults e pisos
func EffectiveRules(cfg *domain.CommissionConfig) domain.ScoringRules {
	if cfg == nil {
		cfg = &domain.CommissionConfig{}
	}

	weights, defaulted := ParseWeights(cfg.CompositeWeights)

	anchor := cfg.CompositeAnchor
	if anchor == 0 {
		anchor = DefaultCompositeAnchor
	}

	leaderCap := DefaultLeaderBonusCap
	if cfg.LeaderBonusCap != nil {
		leaderCap = *cfg.LeaderBonusCap
	}

	workingDays := cfg.WorkingDays
	if workingDays == 0 {
		workingDays = DefaultWorkingDays
	}
	workingDays = max(1, workingDays)

	daysElapsed := max(1, cfg.DaysElapsed)

	daysInMonth := cfg.DaysInMonth
	if daysInMonth == 0 {
		daysInMonth = DefaultDaysInMonth
	}
	daysInMonth = max(daysElapsed, daysInMonth)

	return domain.ScoringRules{
		BandsYour:        ParseBands(cfg.BandsYour),
		BandsOpt:         ParseBands(cfg.BandsOpt),
		CompositeWeights: weights,
		WeightsDefaulted: defaulted,
		CompositeAnchor:  anchor,
		LeaderBonusCap:   leaderCap,
		WorkingDays:      workingDays,
		DaysElapsed:      daysElapsed,
		DaysInMonth:      daysInMonth,
	}
}

// ParseWeights lê os cinco pesos do composto. Qualquer desvio de exatamente
// cinco números finitos cai nos pesos padrão e retorna defaulted=true.
func ParseWeights(raw string) ([]float64, bool) {
	fallback := append([]float64(nil), DefaultCompositeWeights...)
	if strings.TrimSpace(raw) == "" {
		return fallback, true
	}

	parts := strings.Split(raw, ",")
	if len(parts) != weightCount {
		return fallback, true
	}

	weights := make([]float64, 0, weightCount)
	for _, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			return fallback, true
		}
		weights = append(weights, w)
	}

	return weights, false
}

// ComputeMetrics calcula as métricas de cada agente e o consolidado da equipe
func ComputeMetrics(cfg *domain.CommissionConfig, agents []domain.AgentWithKPI) domain.MetricsResult {
	if cfg == nil {
		cfg = &domain.CommissionConfig{}
	}

	rules := EffectiveRules(cfg)
	bandsYour := Bands(rules.BandsYour)
	bandsOpt := Bands(rules.BandsOpt)

	wSum := 0.0
	for _, w := range rules.CompositeWeights {
		wSum += w
	}
	if wSum == 0 {
		wSum = 100
	}

	result := domain.MetricsResult{
		AgentMetrics: make([]domain.AgentMetrics, 0, len(agents)),
	}

	var scoreSum float64
	team := &result.Team

	for _, agent := range agents {
		m := computeAgent(cfg, rules, bandsYour, bandsOpt, wSum, agent)

		scoreSum += m.Score
		team.TeamAchieved += m.AchievedNd
		team.TotalYourComm += m.YourComm
		team.TotalOptComm += m.OptComm
		team.TotalProjected += m.ProjectedNd

		result.AgentMetrics = append(result.AgentMetrics, m)
	}

	team.TeamTarget = cfg.TargetNd * float64(len(agents))
	if len(agents) > 0 {
		team.AvgScore = scoreSum / float64(len(agents))
	}

	return result
}

func computeAgent(
	cfg *domain.CommissionConfig,
	rules domain.ScoringRules,
	bandsYour, bandsOpt Bands,
	wSum float64,
	agent domain.AgentWithKPI,
) domain.AgentMetrics {
	var kpi domain.AgentKpi
	if agent.KPI != nil {
		kpi = *agent.KPI
	}

	nd := kpi.NetDeposit
	ftd := float64(kpi.FtdCount)
	netRedep := kpi.NetRedeposit
	redepClients := float64(kpi.RedepositClients)

	avgCalls := AverageCalls(kpi.CallsAvg, kpi.CallsMonth, rules.WorkingDays)

	ftdAmtNorm := ratio(kpi.FtdAmount, cfg.BmFtdAmount)
	ndNorm := ratio(nd, cfg.BmNetDeposit)
	ftdNorm := ratio(ftd, cfg.BmFtdCount)
	retAmtNorm := ratio(netRedep, cfg.BmNetRedeposit)
	retNumNorm := ratio(redepClients, cfg.BmRedepClients)
	callsNorm := ratio(avgCalls, cfg.BmCallsPerDay)

	ndPts := ndNorm * maxNdPts
	ftdPts := ftdNorm * maxFtdPts
	retPts := retAmtNorm*maxRetAmtPts + retNumNorm*maxRetCountPts
	callsPts := callsNorm * maxCallsPts

	// somente o bônus do líder tem teto
	mgrBonus := kpi.MgrBonus
	if agent.IsLeader {
		mgrBonus = math.Min(mgrBonus, rules.LeaderBonusCap)
	}

	score := math.Ceil(ndPts + ftdPts + retPts + callsPts + mgrBonus)

	var base float64
	switch cfg.ApplyBase {
	case domain.ApplyBaseNetDeposit:
		base = nd
	case domain.ApplyBaseNetRedeposit:
		base = netRedep
	default:
		w := rules.CompositeWeights
		weighted := (ftdAmtNorm*w[0] +
			ftdNorm*w[1] +
			retAmtNorm*w[2] +
			retNumNorm*w[3] +
			callsNorm*w[4]) / math.Max(wSum, 1)
		base = weighted * rules.CompositeAnchor
	}

	yourPct := bandsYour.Rate(score)
	optPct := bandsOpt.Rate(score)

	projected := ProjectNetDeposit(nd, rules.DaysElapsed, rules.DaysInMonth)

	pctTarget := 0.0
	if cfg.TargetNd > 0 {
		pctTarget = nd / cfg.TargetNd * 100
	}

	paceStatus := domain.PaceStatusBehind
	if projected >= cfg.TargetNd {
		paceStatus = domain.PaceStatusOnPace
	}

	callsStatus := domain.CallsStatusBelow
	if avgCalls >= cfg.BmCallsPerDay {
		callsStatus = domain.CallsStatusOK
	}

	return domain.AgentMetrics{
		Agent:       agent.Agent,
		KPI:         agent.KPI,
		TargetNd:    cfg.TargetNd,
		AchievedNd:  nd,
		PctTarget:   pctTarget,
		NdPts:       ndPts,
		FtdPts:      ftdPts,
		RetPts:      retPts,
		CallsPts:    callsPts,
		MgrBonus:    mgrBonus,
		Score:       score,
		YourPct:     yourPct,
		YourComm:    base * yourPct,
		OptPct:      optPct,
		OptComm:     base * optPct,
		ProjectedNd: projected,
		PaceStatus:  paceStatus,
		CallsStatus: callsStatus,
	}
}

// AverageCalls prioriza a média informada; sem ela divide o total do mês pelos dias úteis
func AverageCalls(callsAvg float64, callsMonth, workingDays int) float64 {
	if callsAvg > 0 {
		return callsAvg
	}

	if callsMonth > 0 {
		return float64(callsMonth) / float64(max(1, workingDays))
	}

	return 0
}

// ProjectNetDeposit projeta linearmente o ND até o fim do mês
func ProjectNetDeposit(nd float64, daysElapsed, daysInMonth int) float64 {
	if nd <= 0 {
		return 0
	}

	elapsed := max(1, daysElapsed)
	total := max(elapsed, daysInMonth)

	return nd / float64(elapsed) * float64(total)
}

// ratio normaliza value contra o benchmark, limitado a 1. Benchmark < 1 vira 1.
func ratio(value, benchmark float64) float64 {
	return math.Min(value/math.Max(benchmark, 1), 1)
}
