// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=commission_config.go -destination=mocks/commission_config.go -package=mocks

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
	commissionConfigsTable = "commission_configs"
)

var commissionConfigColumns = []string{
	"id",
	"target_nd",
	"working_days",
	"bm_net_deposit",
	"bm_ftd_count",
	"bm_ftd_amount",
	"bm_net_redeposit",
	"bm_redep_clients",
	"bm_calls_per_day",
	"apply_base",
	"COALESCE(bands_your, '')",
	"COALESCE(bands_opt, '')",
	"composite_anchor",
	"COALESCE(composite_weights, '')",
	"leader_bonus_cap",
	"days_elapsed",
	"days_in_month",
	"created_at",
}

type CommissionConfigRepository interface {
	GetActive(ctx context.Context) (*domain.CommissionConfig, error)
	Create(ctx context.Context, cfg *domain.CommissionConfig) (*domain.CommissionConfig, error)
	UpdatePaceCalendar(ctx context.Context, id, daysElapsed, daysInMonth int) error
	WithTx(tx *sql.Tx) CommissionConfigRepository
}

type commissionConfigRepository struct {
	db postgres.Queryer
}

func NewCommissionConfigRepository(conn *postgres.Connection) CommissionConfigRepository {
	return &commissionConfigRepository{
		db: conn,
	}
}

func (r *commissionConfigRepository) WithTx(tx *sql.Tx) CommissionConfigRepository {
	return &commissionConfigRepository{db: tx}
}

// GetActive retorna a configuração mais recente ou nil quando não existe nenhuma
func (r *commissionConfigRepository) GetActive(ctx context.Context) (*domain.CommissionConfig, error) {
	query, args, err := squirrel.
		Select(commissionConfigColumns...).
		From(commissionConfigsTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cfg, err := scanCommissionConfig(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar configuração ativa: %w", err)
	}

	return cfg, nil
}

func (r *commissionConfigRepository) Create(ctx context.Context, cfg *domain.CommissionConfig) (*domain.CommissionConfig, error) {
	query, args, err := squirrel.
		Insert(commissionConfigsTable).
		Columns(
			"target_nd",
			"working_days",
			"bm_net_deposit",
			"bm_ftd_count",
			"bm_ftd_amount",
			"bm_net_redeposit",
			"bm_redep_clients",
			"bm_calls_per_day",
			"apply_base",
			"bands_your",
			"bands_opt",
			"composite_anchor",
			"composite_weights",
			"leader_bonus_cap",
			"days_elapsed",
			"days_in_month",
		).
		Values(
			cfg.TargetNd,
			cfg.WorkingDays,
			cfg.BmNetDeposit,
			cfg.BmFtdCount,
			cfg.BmFtdAmount,
			cfg.BmNetRedeposit,
			cfg.BmRedepClients,
			cfg.BmCallsPerDay,
			string(cfg.ApplyBase),
			nullableString(cfg.BandsYour),
			nullableString(cfg.BandsOpt),
			cfg.CompositeAnchor,
			nullableString(cfg.CompositeWeights),
			cfg.LeaderBonusCap,
			cfg.DaysElapsed,
			cfg.DaysInMonth,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &cfg.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir configuração: %w", err)
	}

	return cfg, nil
}

func (r *commissionConfigRepository) UpdatePaceCalendar(ctx context.Context, id, daysElapsed, daysInMonth int) error {
	query, args, err := squirrel.
		Update(commissionConfigsTable).
		Set("days_elapsed", daysElapsed).
		Set("days_in_month", daysInMonth).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar calendário da configuração %d: %w", id, err)
	}

	return nil
}

func scanCommissionConfig(row *sql.Row) (*domain.CommissionConfig, error) {
	cfg := &domain.CommissionConfig{}
	var applyBase string
	var leaderCap sql.NullFloat64

	err := row.Scan(
		&cfg.ID,
		&cfg.TargetNd,
		&cfg.WorkingDays,
		&cfg.BmNetDeposit,
		&cfg.BmFtdCount,
		&cfg.BmFtdAmount,
		&cfg.BmNetRedeposit,
		&cfg.BmRedepClients,
		&cfg.BmCallsPerDay,
		&applyBase,
		&cfg.BandsYour,
		&cfg.BandsOpt,
		&cfg.CompositeAnchor,
		&cfg.CompositeWeights,
		&leaderCap,
		&cfg.DaysElapsed,
		&cfg.DaysInMonth,
		&cfg.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	cfg.ApplyBase = domain.ApplyBase(applyBase)
	if leaderCap.Valid {
		cfg.LeaderBonusCap = &leaderCap.Float64
	}

	return cfg, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
