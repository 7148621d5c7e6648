package dashboard

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/scoring"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
	"github.com/vfg2006/commission-dashboard-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

var (
	ErrConfigNotFound = errors.New("nenhuma configuração de comissão encontrada")
	ErrFetchData      = errors.New("erro ao carregar dados do dashboard")
)

// Origens dos cálculos, usadas como label nas métricas
const (
	SourceDashboard  = "dashboard"
	SourceAdminPanel = "admin_panel"
)

type DashboardService interface {
	GetDashboard(ctx context.Context) (*domain.DashboardResponse, error)
	GetAdminPanel(ctx context.Context) (*domain.AdminPanelResponse, error)
	// Compute carrega configuração e agentes e calcula as métricas, sem montar resposta
	Compute(ctx context.Context, source string) (*domain.CommissionConfig, domain.MetricsResult, error)
}

type Service struct {
	configRepo repository.CommissionConfigRepository
	agentRepo  repository.AgentRepository
	metrics    *metrics.Metrics
}

func NewService(
	configRepo repository.CommissionConfigRepository,
	agentRepo repository.AgentRepository,
	m *metrics.Metrics,
) DashboardService {
	return &Service{
		configRepo: configRepo,
		agentRepo:  agentRepo,
		metrics:    m,
	}
}

func (s *Service) Compute(ctx context.Context, source string) (*domain.CommissionConfig, domain.MetricsResult, error) {
	var (
		cfg    *domain.CommissionConfig
		agents []domain.AgentWithKPI
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		cfg, err = s.configRepo.GetActive(gctx)
		return errors.Wrap(err, "configuração ativa")
	})

	g.Go(func() error {
		var err error
		agents, err = s.agentRepo.ListActiveWithLatestKPI(gctx)
		return errors.Wrap(err, "agentes ativos")
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("Falha ao carregar dados para o cálculo de comissão")
		return nil, domain.MetricsResult{}, fmt.Errorf("%w: %v", ErrFetchData, err)
	}

	if cfg == nil {
		return nil, domain.MetricsResult{}, ErrConfigNotFound
	}

	result := scoring.ComputeMetrics(cfg, agents)
	s.metrics.ObserveComputation(source, len(agents), result.Team)

	return cfg, result, nil
}

func (s *Service) GetDashboard(ctx context.Context) (*domain.DashboardResponse, error) {
	cfg, result, err := s.Compute(ctx, SourceDashboard)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardResponse{
		Config:       cfg,
		AgentMetrics: result.AgentMetrics,
		Team:         result.Team,
	}, nil
}

func (s *Service) GetAdminPanel(ctx context.Context) (*domain.AdminPanelResponse, error) {
	cfg, result, err := s.Compute(ctx, SourceAdminPanel)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.AdminPanelRow, 0, len(result.AgentMetrics))
	for _, m := range result.AgentMetrics {
		rows = append(rows, newAdminPanelRow(m))
	}

	return &domain.AdminPanelResponse{
		Rows:      rows,
		Team:      result.Team,
		TargetNd:  cfg.TargetNd,
		BandsYour: cfg.BandsYour,
		BandsOpt:  cfg.BandsOpt,
		Rules:     scoring.EffectiveRules(cfg),
	}, nil
}

// newAdminPanelRow usa zero nos campos do KPI quando o agente ainda não tem lançamento
func newAdminPanelRow(m domain.AgentMetrics) domain.AdminPanelRow {
	row := domain.AdminPanelRow{
		AgentID:  m.Agent.ID,
		Name:     m.Agent.Name,
		IsLeader: m.Agent.IsLeader,
		NdPts:    m.NdPts,
		FtdPts:   m.FtdPts,
		RetPts:   m.RetPts,
		CallsPts: m.CallsPts,
		Score:    m.Score,
	}

	if kpi := m.KPI; kpi != nil {
		kpiID := kpi.ID
		row.KpiID = &kpiID
		row.NetDeposit = kpi.NetDeposit
		row.FtdCount = kpi.FtdCount
		row.NetRedeposit = kpi.NetRedeposit
		row.FtdAmount = kpi.FtdAmount
		row.RedepositClients = kpi.RedepositClients
		row.CallsMonth = kpi.CallsMonth
		row.CallsAvg = kpi.CallsAvg
		row.MgrBonus = kpi.MgrBonus
	}

	return row
}
