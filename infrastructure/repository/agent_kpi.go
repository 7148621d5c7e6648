package repository

//go:generate mockgen -source=agent_kpi.go -destination=mocks/agent_kpi.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
)

const (
	agentKpisTable = "agent_kpis"
)

// ErrKPINotFound é retornado quando a atualização aponta para um lançamento inexistente
var ErrKPINotFound = errors.New("lançamento de KPI não encontrado")

type AgentKpiRepository interface {
	Insert(ctx context.Context, kpi *domain.AgentKpi) (int, error)
	Update(ctx context.Context, kpi *domain.AgentKpi) error
	WithTx(tx *sql.Tx) AgentKpiRepository
}

type agentKpiRepository struct {
	db postgres.Queryer
}

func NewAgentKpiRepository(conn *postgres.Connection) AgentKpiRepository {
	return &agentKpiRepository{
		db: conn,
	}
}

func (r *agentKpiRepository) WithTx(tx *sql.Tx) AgentKpiRepository {
	return &agentKpiRepository{db: tx}
}

func (r *agentKpiRepository) Insert(ctx context.Context, kpi *domain.AgentKpi) (int, error) {
	query, args, err := squirrel.
		Insert(agentKpisTable).
		Columns(
			"agent_id",
			"net_deposit",
			"ftd_count",
			"net_redeposit",
			"ftd_amount",
			"redeposit_clients",
			"calls_month",
			"calls_avg",
			"mgr_bonus",
		).
		Values(
			kpi.AgentID,
			kpi.NetDeposit,
			kpi.FtdCount,
			kpi.NetRedeposit,
			kpi.FtdAmount,
			kpi.RedepositClients,
			kpi.CallsMonth,
			kpi.CallsAvg,
			kpi.MgrBonus,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	var id int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("erro ao inserir KPI do agente %d: %w", kpi.AgentID, err)
	}

	return id, nil
}

// Update sobrescreve os valores do lançamento kpi.ID. O agente do lançamento não muda.
func (r *agentKpiRepository) Update(ctx context.Context, kpi *domain.AgentKpi) error {
	query, args, err := squirrel.
		Update(agentKpisTable).
		SetMap(map[string]any{
			"net_deposit":       kpi.NetDeposit,
			"ftd_count":         kpi.FtdCount,
			"net_redeposit":     kpi.NetRedeposit,
			"ftd_amount":        kpi.FtdAmount,
			"redeposit_clients": kpi.RedepositClients,
			"calls_month":       kpi.CallsMonth,
			"calls_avg":         kpi.CallsAvg,
			"mgr_bonus":         kpi.MgrBonus,
			"updated_at":        squirrel.Expr("CURRENT_TIMESTAMP"),
		}).
		Where(squirrel.Eq{"id": kpi.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar KPI %d: %w", kpi.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar atualização do KPI %d: %w", kpi.ID, err)
	}

	if affected == 0 {
		return ErrKPINotFound
	}

	return nil
}
