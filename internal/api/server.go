package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-dashboard-api/internal/api/handler"
	"github.com/vfg2006/commission-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/commission-dashboard-api/internal/config"
	"github.com/vfg2006/commission-dashboard-api/internal/scheduler"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/agent"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/auditing"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/configuring"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/kpi"
	"github.com/vfg2006/commission-dashboard-api/pkg/metrics"
	"github.com/vfg2006/commission-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	DB            handler.Pinger
	Dashboard     dashboard.DashboardService
	KPI           kpi.KPIService
	Config        configuring.ConfigService
	Agent         agent.AgentService
	Audit         auditing.AuditService
	Authenticator authenticating.Authenticator

	CommissionSnapshotSync *scheduler.CommissionSnapshotService
	PaceCalendarSync       *scheduler.PaceCalendarService
}

func New(
	config *config.Config,
	services Services,
	m *metrics.Metrics,
) (*Server, error) {
	// Inicializar o struct com os serviços de cron jobs
	cronServices := handler.CronJobServices{}
	if services.CommissionSnapshotSync != nil {
		cronServices.CommissionSnapshotService = services.CommissionSnapshotSync
	}
	if services.PaceCalendarSync != nil {
		cronServices.PaceCalendarService = services.PaceCalendarSync
	}

	limiter := middleware.NewLoginRateLimiter(
		config.Auth.LoginRateEvery,
		config.Auth.LoginRateBurst,
		m,
		middleware.WithTrustedProxies(config.Auth.TrustedProxies),
	)
	secureCookie := config.App.IsProduction()

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Metrics(m)...),
		router.WithRoutes(handler.Pages(services.Dashboard)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, limiter, m, secureCookie)...),
		router.WithRoutes(handler.KPIs(services.KPI)...),
		router.WithRoutes(handler.CommissionConfig(services.Config)...),
		router.WithRoutes(handler.Agents(services.Agent)...),
		router.WithRoutes(handler.AuditNotes(services.Audit)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)
	if services.CommissionSnapshotSync != nil {
		rt.AddRoutes(handler.Snapshots(services.CommissionSnapshotSync)...)
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(m),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
