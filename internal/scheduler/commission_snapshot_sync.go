package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/commission-dashboard-api/internal/config"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/commission-dashboard-api/pkg/metrics"
	"github.com/vfg2006/commission-dashboard-api/pkg/utils"
)

// CommissionSnapshotSyncConfig representa a configuração do agendador de fotografias de comissão
type CommissionSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CommissionSnapshotService grava, para o mês corrente, o resultado calculado de cada agente ativo
type CommissionSnapshotService struct {
	scheduler        *gocron.Scheduler
	config           CommissionSnapshotSyncConfig
	dashboardService dashboard.DashboardService
	snapshotRepo     repository.CommissionSnapshotRepository
	auditRepo        repository.AuditNoteRepository
	metrics          *metrics.Metrics
	now              func() time.Time
	generateID       func() (string, error)

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastMonth           string
	lastRows            int
	lastError           string
}

func NewCommissionSnapshotService(
	dashboardService dashboard.DashboardService,
	snapshotRepo repository.CommissionSnapshotRepository,
	auditRepo repository.AuditNoteRepository,
	m *metrics.Metrics,
	appConfig *config.Config,
) *CommissionSnapshotService {
	snapshotConfig := CommissionSnapshotSyncConfig{
		CronSchedule: appConfig.CommissionSnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.CommissionSnapshotSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"sync_enabled":  snapshotConfig.SyncEnabled,
	}).Info("Configuração do agendador de fotografias de comissão carregada")

	return &CommissionSnapshotService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           snapshotConfig,
		dashboardService: dashboardService,
		snapshotRepo:     snapshotRepo,
		auditRepo:        auditRepo,
		metrics:          m,
		now:              time.Now,
		generateID:       utils.GenerateID,
	}
}

// Start inicia o agendador
func (s *CommissionSnapshotService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Fotografia de comissões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de fotografias de comissão")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshots(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar fotografia de comissões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de fotografias de comissão")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshots executa uma rodada, ignorando se já houver outra em andamento
func (s *CommissionSnapshotService) syncSnapshots(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fotografia de comissões já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	runID, month, rows, err := s.runSnapshot(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastRunID = runID
	s.lastMonth = month
	s.lastRows = rows

	entry := logrus.WithFields(logrus.Fields{
		"job":      JobCommissionSnapshot,
		"run_id":   runID,
		"month":    month,
		"rows":     rows,
		"duration": time.Since(startTime).String(),
	})

	switch {
	case errors.Is(err, dashboard.ErrConfigNotFound):
		s.lastError = ""
		s.lastSyncCompletedAt = s.now()
		s.metrics.IncJobRun(JobCommissionSnapshot, metrics.ResultSkipped)
		entry.Info("Nenhuma configuração de comissão ativa, fotografia ignorada")
	case err != nil:
		s.lastError = err.Error()
		s.metrics.IncJobRun(JobCommissionSnapshot, metrics.ResultFailure)
		entry.WithError(err).Error("Erro ao gravar fotografia de comissões")
	default:
		s.lastError = ""
		s.lastSyncCompletedAt = s.now()
		s.metrics.IncJobRun(JobCommissionSnapshot, metrics.ResultSuccess)
		entry.Info("Fotografia de comissões concluída")
	}
}

func (s *CommissionSnapshotService) runSnapshot(ctx context.Context) (string, string, int, error) {
	runID, err := s.generateID()
	if err != nil {
		return "", "", 0, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	month := utils.FormatMonth(s.now())

	_, result, err := s.dashboardService.Compute(ctx, JobCommissionSnapshot)
	if err != nil {
		return runID, month, 0, err
	}

	snapshots := make([]*domain.CommissionSnapshot, 0, len(result.AgentMetrics))
	for _, m := range result.AgentMetrics {
		snapshots = append(snapshots, domain.NewCommissionSnapshot(m, month, runID))
	}

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshots); err != nil {
		return runID, month, 0, fmt.Errorf("erro ao salvar fotografias: %w", err)
	}

	note := &domain.AuditNote{
		Action: domain.AuditActionSnapshotRun,
		Actor:  JobCommissionSnapshot,
		Note: fmt.Sprintf("execução %s: %d agentes em %s, comissão total %s",
			runID, len(snapshots), month, utils.FormatCurrency(result.Team.TotalYourComm)),
	}
	if err := s.auditRepo.Create(ctx, note); err != nil {
		logrus.WithError(err).WithField("run_id", runID).Warn("Erro ao registrar nota de auditoria da fotografia")
	}

	return runID, month, len(snapshots), nil
}

// TriggerManualSync inicia manualmente uma fotografia de comissões
func (s *CommissionSnapshotService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Fotografia de comissões já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando fotografia manual de comissões")
	go s.RunNow(context.Background())
}

// RunNow executa a fotografia de forma síncrona
func (s *CommissionSnapshotService) RunNow(ctx context.Context) {
	s.syncSnapshots(ctx)
}

// GetStatus retorna o status atual da sincronização
func (s *CommissionSnapshotService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_run_id":            s.lastRunID,
		"last_month":             s.lastMonth,
		"last_rows":              s.lastRows,
		"last_error":             s.lastError,
	}
}

// ListSnapshots retorna as fotografias gravadas para o mês (mm-yyyy)
func (s *CommissionSnapshotService) ListSnapshots(ctx context.Context, month string) ([]*domain.CommissionSnapshot, error) {
	return s.snapshotRepo.ListByMonth(ctx, month)
}
