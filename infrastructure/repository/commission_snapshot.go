package repository

//go:generate mockgen -source=commission_snapshot.go -destination=mocks/commission_snapshot.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
)

const (
	commissionSnapshotsTable = "commission_snapshots cs"
)

type CommissionSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshots []*domain.CommissionSnapshot) error
	ListByMonth(ctx context.Context, month string) ([]*domain.CommissionSnapshot, error)
}

type commissionSnapshotRepository struct {
	db postgres.Queryer
}

func NewCommissionSnapshotRepository(conn *postgres.Connection) CommissionSnapshotRepository {
	return &commissionSnapshotRepository{
		db: conn,
	}
}

func (r *commissionSnapshotRepository) ListByMonth(ctx context.Context, month string) ([]*domain.CommissionSnapshot, error) {
	query, args, err := squirrel.
		Select(
			"cs.id",
			"cs.agent_id",
			"a.name",
			"cs.month",
			"cs.run_id",
			"cs.achieved_nd",
			"cs.pct_target",
			"cs.score",
			"cs.your_comm",
			"cs.opt_comm",
			"cs.projected_nd",
			"cs.pace_status",
			"cs.created_at",
			"cs.updated_at",
		).
		From(commissionSnapshotsTable).
		Join("agents a ON a.id = cs.agent_id").
		Where(squirrel.Eq{"cs.month": month}).
		OrderBy("cs.score DESC", "cs.agent_id ASC").
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

	snapshots := make([]*domain.CommissionSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanCommissionSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fotografia de comissão: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *commissionSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshots []*domain.CommissionSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	// Construir query de inserção em lote
	query := squirrel.StatementBuilder.
		Insert("commission_snapshots").
		Columns(
			"agent_id",
			"month",
			"run_id",
			"achieved_nd",
			"pct_target",
			"score",
			"your_comm",
			"opt_comm",
			"projected_nd",
			"pace_status",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, s := range snapshots {
		query = query.Values(
			s.AgentID,
			s.Month,
			s.RunID,
			s.AchievedNd,
			s.PctTarget,
			s.Score,
			s.YourComm,
			s.OptComm,
			s.ProjectedNd,
			string(s.PaceStatus),
		)
	}

	// upsert por agente/mês
	query = query.Suffix(`
		ON CONFLICT (agent_id, month) DO UPDATE SET
			run_id = EXCLUDED.run_id,
			achieved_nd = EXCLUDED.achieved_nd,
			pct_target = EXCLUDED.pct_target,
			score = EXCLUDED.score,
			your_comm = EXCLUDED.your_comm,
			opt_comm = EXCLUDED.opt_comm,
			projected_nd = EXCLUDED.projected_nd,
			pace_status = EXCLUDED.pace_status,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func scanCommissionSnapshot(rows *sql.Rows) (*domain.CommissionSnapshot, error) {
	item := &domain.CommissionSnapshot{}
	var paceStatus string

	err := rows.Scan(
		&item.ID,
		&item.AgentID,
		&item.AgentName,
		&item.Month,
		&item.RunID,
		&item.AchievedNd,
		&item.PctTarget,
		&item.Score,
		&item.YourComm,
		&item.OptComm,
		&item.ProjectedNd,
		&paceStatus,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.PaceStatus = domain.PaceStatus(paceStatus)

	return item, nil
}
