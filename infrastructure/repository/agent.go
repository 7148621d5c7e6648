package repository

//go:generate mockgen -source=agent.go -destination=mocks/agent.go -package=mocks

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
	agentsTable = "agents"
)

// latestKPIJoin seleciona apenas o lançamento mais recente de cada agente
const latestKPIJoin = `LATERAL (
	SELECT k.id, k.agent_id, k.net_deposit, k.ftd_count, k.net_redeposit, k.ftd_amount,
		k.redeposit_clients, k.calls_month, k.calls_avg, k.mgr_bonus, k.created_at, k.updated_at
	FROM agent_kpis k
	WHERE k.agent_id = a.id
	ORDER BY k.created_at DESC, k.id DESC
	LIMIT 1
) lk ON TRUE`

type AgentRepository interface {
	ListActiveWithLatestKPI(ctx context.Context) ([]domain.AgentWithKPI, error)
	ListAll(ctx context.Context) ([]*domain.Agent, error)
	GetByID(ctx context.Context, id int) (*domain.Agent, error)
	Create(ctx context.Context, agent *domain.Agent) (*domain.Agent, error)
	Update(ctx context.Context, agent *domain.Agent) error
	WithTx(tx *sql.Tx) AgentRepository
}

type agentRepository struct {
	db postgres.Queryer
}

func NewAgentRepository(conn *postgres.Connection) AgentRepository {
	return &agentRepository{
		db: conn,
	}
}

func (r *agentRepository) WithTx(tx *sql.Tx) AgentRepository {
	return &agentRepository{db: tx}
}

func (r *agentRepository) ListActiveWithLatestKPI(ctx context.Context) ([]domain.AgentWithKPI, error) {
	query, args, err := squirrel.
		Select(
			"a.id",
			"a.name",
			"a.is_leader",
			"a.active",
			"a.created_at",
			"lk.id",
			"lk.net_deposit",
			"lk.ftd_count",
			"lk.net_redeposit",
			"lk.ftd_amount",
			"lk.redeposit_clients",
			"lk.calls_month",
			"lk.calls_avg",
			"lk.mgr_bonus",
			"lk.created_at",
			"lk.updated_at",
		).
		From(agentsTable + " a").
		LeftJoin(latestKPIJoin).
		Where(squirrel.Eq{"a.active": true}).
		OrderBy("a.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	agents := make([]domain.AgentWithKPI, 0)
	for rows.Next() {
		agent, err := scanAgentWithKPI(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear agente: %w", err)
		}
		agents = append(agents, *agent)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return agents, nil
}

func (r *agentRepository) ListAll(ctx context.Context) ([]*domain.Agent, error) {
	query, args, err := squirrel.
		Select("id", "name", "is_leader", "active", "created_at").
		From(agentsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	agents := make([]*domain.Agent, 0)
	for rows.Next() {
		var agent domain.Agent
		if err := rows.Scan(&agent.ID, &agent.Name, &agent.IsLeader, &agent.Active, &agent.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear agente: %w", err)
		}
		agents = append(agents, &agent)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return agents, nil
}

func (r *agentRepository) GetByID(ctx context.Context, id int) (*domain.Agent, error) {
	query, args, err := squirrel.
		Select("id", "name", "is_leader", "active", "created_at").
		From(agentsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var agent domain.Agent
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&agent.ID, &agent.Name, &agent.IsLeader, &agent.Active, &agent.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar agente %d: %w", id, err)
	}

	return &agent, nil
}

func (r *agentRepository) Create(ctx context.Context, agent *domain.Agent) (*domain.Agent, error) {
	query, args, err := squirrel.
		Insert(agentsTable).
		Columns("name", "is_leader", "active").
		Values(agent.Name, agent.IsLeader, agent.Active).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&agent.ID, &agent.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir agente: %w", err)
	}

	return agent, nil
}

func (r *agentRepository) Update(ctx context.Context, agent *domain.Agent) error {
	query, args, err := squirrel.
		Update(agentsTable).
		Set("name", agent.Name).
		Set("is_leader", agent.IsLeader).
		Set("active", agent.Active).
		Where(squirrel.Eq{"id": agent.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar agente %d: %w", agent.ID, err)
	}

	return nil
}

func scanAgentWithKPI(rows *sql.Rows) (*domain.AgentWithKPI, error) {
	item := &domain.AgentWithKPI{}

	var (
		kpiID            sql.NullInt64
		netDeposit       sql.NullFloat64
		ftdCount         sql.NullInt64
		netRedeposit     sql.NullFloat64
		ftdAmount        sql.NullFloat64
		redepositClients sql.NullInt64
		callsMonth       sql.NullInt64
		callsAvg         sql.NullFloat64
		mgrBonus         sql.NullFloat64
		kpiCreatedAt     sql.NullTime
		kpiUpdatedAt     sql.NullTime
	)

	err := rows.Scan(
		&item.ID,
		&item.Name,
		&item.IsLeader,
		&item.Active,
		&item.CreatedAt,
		&kpiID,
		&netDeposit,
		&ftdCount,
		&netRedeposit,
		&ftdAmount,
		&redepositClients,
		&callsMonth,
		&callsAvg,
		&mgrBonus,
		&kpiCreatedAt,
		&kpiUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// sem lançamento: KPI fica nil e o cálculo trata como zerado
	if !kpiID.Valid {
		return item, nil
	}

	item.KPI = &domain.AgentKpi{
		ID:               int(kpiID.Int64),
		AgentID:          item.ID,
		NetDeposit:       netDeposit.Float64,
		FtdCount:         int(ftdCount.Int64),
		NetRedeposit:     netRedeposit.Float64,
		FtdAmount:        ftdAmount.Float64,
		RedepositClients: int(redepositClients.Int64),
		CallsMonth:       int(callsMonth.Int64),
		CallsAvg:         callsAvg.Float64,
		MgrBonus:         mgrBonus.Float64,
		CreatedAt:        kpiCreatedAt.Time,
		UpdatedAt:        kpiUpdatedAt.Time,
	}

	return item, nil
}
