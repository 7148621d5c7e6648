// Package migration cria o schema do banco e grava os dados iniciais
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
)

//go:embed sql/*.sql
var sqlFS embed.FS

// Execer é satisfeito por *sql.DB e *sql.Tx
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Run aplica os arquivos sql/*.sql em ordem alfabética; todos são idempotentes
func Run(ctx context.Context, db Execer) error {
	files, err := fs.Glob(sqlFS, "sql/*.sql")
	if err != nil {
		return errors.Wrap(err, "listar migrações")
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := sqlFS.ReadFile(file)
		if err != nil {
			return errors.Wrapf(err, "ler %s", file)
		}

		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return errors.Wrapf(err, "aplicar %s", file)
		}

		logrus.WithField("file", file).Info("Migração aplicada")
	}

	return nil
}

type seedAgent struct {
	Name     string
	IsLeader bool
}

// SeedAgents é a equipe inicial
var SeedAgents = []seedAgent{
	{Name: "Lena"},
	{Name: "Lida"},
	{Name: "Lara"},
	{Name: "Mahta"},
	{Name: "Sophia", IsLeader: true},
	{Name: "Pegah"},
	{Name: "Radin"},
}

// SeedConfig é a configuração de comissão inicial
func SeedConfig() *domain.CommissionConfig {
	leaderBonusCap := 1.0

	return &domain.CommissionConfig{
		TargetNd:         300000,
		WorkingDays:      22,
		BmNetDeposit:     200000,
		BmFtdCount:       100,
		BmFtdAmount:      200000,
		BmNetRedeposit:   200000,
		BmRedepClients:   300,
		BmCallsPerDay:    60,
		ApplyBase:        domain.ApplyBaseComposite,
		BandsYour:        "75:0.01,91:0.02,101:0.03",
		BandsOpt:         "0:0.005,60:0.01,75:0.015,90:0.02,100:0.025,121:0.03",
		CompositeAnchor:  300000,
		CompositeWeights: "20,20,20,20,20",
		LeaderBonusCap:   &leaderBonusCap,
		DaysElapsed:      16,
		DaysInMonth:      31,
	}
}

// Seed grava agentes e configuração iniciais. Com reset os dados atuais são apagados antes;
// sem reset nada é feito se já existir algum agente.
func Seed(ctx context.Context, db *sql.DB, reset bool) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "iniciar transação do seed")
	}
	defer func() { _ = tx.Rollback() }()

	if reset {
		for _, table := range []string{"commission_snapshots", "agent_kpis", "agents", "commission_configs", "audit_notes"} {
			if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
				return errors.Wrapf(err, "limpar %s", table)
			}
		}
	} else {
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM agents").Scan(&count); err != nil {
			return errors.Wrap(err, "contar agentes")
		}
		if count > 0 {
			logrus.WithField("agents", count).Info("Banco já possui agentes, seed ignorado")
			return nil
		}
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	agents := psql.Insert("agents").Columns("name", "is_leader")
	for _, a := range SeedAgents {
		agents = agents.Values(a.Name, a.IsLeader)
	}
	if _, err := agents.RunWith(tx).ExecContext(ctx); err != nil {
		return errors.Wrap(err, "inserir agentes")
	}

	cfg := SeedConfig()
	_, err = psql.Insert("commission_configs").
		Columns(
			"target_nd", "working_days",
			"bm_net_deposit", "bm_ftd_count", "bm_ftd_amount", "bm_net_redeposit", "bm_redep_clients", "bm_calls_per_day",
			"apply_base", "bands_your", "bands_opt", "composite_anchor", "composite_weights", "leader_bonus_cap",
			"days_elapsed", "days_in_month",
		).
		Values(
			cfg.TargetNd, cfg.WorkingDays,
			cfg.BmNetDeposit, cfg.BmFtdCount, cfg.BmFtdAmount, cfg.BmNetRedeposit, cfg.BmRedepClients, cfg.BmCallsPerDay,
			string(cfg.ApplyBase), cfg.BandsYour, cfg.BandsOpt, cfg.CompositeAnchor, cfg.CompositeWeights, *cfg.LeaderBonusCap,
			cfg.DaysElapsed, cfg.DaysInMonth,
		).
		RunWith(tx).
		ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "inserir configuração de comissão")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "confirmar seed")
	}

	logrus.WithFields(logrus.Fields{
		"agents": len(SeedAgents),
		"reset":  reset,
	}).Info("Seed concluído")

	return nil
}
