package handler

import (
	"net/http"

	"github.com/vfg2006/commission-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/agent"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/auditing"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/configuring"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/kpi"
	"github.com/vfg2006/commission-dashboard-api/pkg/metrics"
	"github.com/vfg2006/commission-dashboard-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(m *metrics.Metrics) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: m.Handler(),
		},
	}
}

// Pages são as telas HTML; /admin passa pelo gate global de autenticação
func Pages(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service),
		},
		{
			Path:    "/login",
			Method:  http.MethodGet,
			Handler: LoginPage(),
		},
		{
			Path:    "/admin",
			Method:  http.MethodGet,
			Handler: AdminPage(service),
		},
	}
}

func Dashboard(service dashboard.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/admin/panel",
			Method:  http.MethodGet,
			Handler: GetAdminPanel(service),
		},
	}
}

func Authentication(
	service authenticating.Authenticator,
	limiter *middleware.LoginRateLimiter,
	m *metrics.Metrics,
	secureCookie bool,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(service, m, secureCookie),
			Middlewares: []func(http.Handler) http.Handler{limiter.Middleware()},
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(secureCookie),
		},
	}
}

func KPIs(service kpi.KPIService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/kpi",
			Method:  http.MethodPost,
			Handler: SaveKPIRows(service),
		},
	}
}

func CommissionConfig(service configuring.ConfigService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/config",
			Method:  http.MethodGet,
			Handler: GetCommissionConfig(service),
		},
		{
			Path:    "/v1/admin/config",
			Method:  http.MethodPost,
			Handler: CreateCommissionConfig(service),
		},
	}
}

func Agents(service agent.AgentService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/agents",
			Method:  http.MethodGet,
			Handler: ListAgents(service),
		},
		{
			Path:    "/v1/admin/agents",
			Method:  http.MethodPost,
			Handler: CreateAgent(service),
		},
		{
			Path:    "/v1/admin/agents/:id",
			Method:  http.MethodPut,
			Handler: UpdateAgent(service),
		},
	}
}

func AuditNotes(service auditing.AuditService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/audit-notes",
			Method:  http.MethodGet,
			Handler: ListAuditNotes(service),
		},
	}
}

func Snapshots(service SnapshotLister) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/snapshots",
			Method:  http.MethodGet,
			Handler: ListSnapshots(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/admin/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
