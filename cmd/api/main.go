package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/commission-dashboard-api/internal/api"
	"github.com/vfg2006/commission-dashboard-api/internal/config"
	"github.com/vfg2006/commission-dashboard-api/internal/scheduler"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/agent"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/auditing"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/configuring"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/kpi"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
	"github.com/vfg2006/commission-dashboard-api/pkg/metrics"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato, nível e ambiente dos logs
	log.Configure(cfg.App.LogLevel, cfg.App.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := migration.Run(ctx, pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	if cfg.Database.Seed {
		if err := migration.Seed(ctx, pgConn.DB, false); err != nil {
			logrus.WithError(err).Fatal("Erro ao gravar seed")
		}
	}

	m := metrics.New()

	configRepo := repository.NewCommissionConfigRepository(pgConn)
	agentRepo := repository.NewAgentRepository(pgConn)
	kpiRepo := repository.NewAgentKpiRepository(pgConn)
	auditRepo := repository.NewAuditNoteRepository(pgConn)
	snapshotRepo := repository.NewCommissionSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(cfg.Auth)
	dashboardService := dashboard.NewService(configRepo, agentRepo, m)
	kpiService := kpi.NewService(pgConn, kpiRepo, auditRepo, m)
	configService := configuring.NewService(pgConn, configRepo, auditRepo)
	agentService := agent.NewService(pgConn, agentRepo, auditRepo)
	auditService := auditing.NewService(auditRepo)

	// Inicializa os agendadores
	commissionSnapshotService := scheduler.NewCommissionSnapshotService(
		dashboardService,
		snapshotRepo,
		auditRepo,
		m,
		cfg,
	)

	paceCalendarService := scheduler.NewPaceCalendarService(
		configService,
		m,
		cfg,
	)

	// Inicia os agendadores em background
	if err := paceCalendarService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de calendário de ritmo")
	} else {
		logrus.Info("Agendador de calendário de ritmo iniciado com sucesso")
	}

	if err := commissionSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fotografias de comissão")
	} else {
		logrus.Info("Agendador de fotografias de comissão iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		DB:                     pgConn,
		Dashboard:              dashboardService,
		KPI:                    kpiService,
		Config:                 configService,
		Agent:                  agentService,
		Audit:                  auditService,
		Authenticator:          authenticator,
		CommissionSnapshotSync: commissionSnapshotService,
		PaceCalendarSync:       paceCalendarService,
	}, m)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource muda para o diretório do main para que o .env seja encontrado
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
