package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-dashboard-api/internal/config"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/configuring"
	"github.com/vfg2006/commission-dashboard-api/pkg/metrics"
)

// PaceCalendarSyncConfig representa a configuração do agendador do calendário de ritmo
type PaceCalendarSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PaceCalendarService mantém dias decorridos e dias do mês da configuração ativa alinhados ao calendário
type PaceCalendarService struct {
	scheduler     *gocron.Scheduler
	config        PaceCalendarSyncConfig
	configService configuring.ConfigService
	metrics       *metrics.Metrics
	now           func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDaysElapsed     int
	lastDaysInMonth     int
	lastError           string
}

func NewPaceCalendarService(
	configService configuring.ConfigService,
	m *metrics.Metrics,
	appConfig *config.Config,
) *PaceCalendarService {
	paceConfig := PaceCalendarSyncConfig{
		CronSchedule: appConfig.PaceCalendarSync.CronSchedule,
		SyncEnabled:  appConfig.PaceCalendarSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": paceConfig.CronSchedule,
		"sync_enabled":  paceConfig.SyncEnabled,
	}).Info("Configuração do agendador de calendário de ritmo carregada")

	return &PaceCalendarService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        paceConfig,
		configService: configService,
		metrics:       m,
		now:           time.Now,
	}
}

// Start inicia o agendador
func (s *PaceCalendarService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Calendário de ritmo desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de calendário de ritmo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCalendar(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar calendário de ritmo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de calendário de ritmo")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *PaceCalendarService) syncCalendar(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Calendário de ritmo já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	cfg, changed, err := s.configService.SyncPaceCalendar(ctx, s.now())

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	entry := logrus.WithField("job", JobPaceCalendar)

	switch {
	case errors.Is(err, configuring.ErrConfigNotFound):
		s.lastError = ""
		s.lastSyncCompletedAt = s.now()
		s.metrics.IncJobRun(JobPaceCalendar, metrics.ResultSkipped)
		entry.Info("Nenhuma configuração de comissão ativa, calendário ignorado")
	case err != nil:
		s.lastError = err.Error()
		s.metrics.IncJobRun(JobPaceCalendar, metrics.ResultFailure)
		entry.WithError(err).Error("Erro ao atualizar calendário de ritmo")
	default:
		s.lastError = ""
		s.lastSyncCompletedAt = s.now()
		s.lastDaysElapsed = cfg.DaysElapsed
		s.lastDaysInMonth = cfg.DaysInMonth
		s.metrics.IncJobRun(JobPaceCalendar, metrics.ResultSuccess)
		entry.WithFields(logrus.Fields{
			"config_id":     cfg.ID,
			"days_elapsed":  cfg.DaysElapsed,
			"days_in_month": cfg.DaysInMonth,
			"changed":       changed,
		}).Info("Calendário de ritmo sincronizado")
	}
}

// TriggerManualSync inicia manualmente a atualização do calendário
func (s *PaceCalendarService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Calendário de ritmo já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do calendário de ritmo")
	go s.RunNow(context.Background())
}

// RunNow atualiza o calendário de forma síncrona
func (s *PaceCalendarService) RunNow(ctx context.Context) {
	s.syncCalendar(ctx)
}

// GetStatus retorna o status atual da sincronização
func (s *PaceCalendarService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_days_elapsed":      s.lastDaysElapsed,
		"last_days_in_month":     s.lastDaysInMonth,
		"last_error":             s.lastError,
	}
}
