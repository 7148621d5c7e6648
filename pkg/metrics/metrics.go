// Package metrics registra os coletores prometheus da aplicação num registry próprio
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/commission-dashboard-api/internal/domain"
)

const namespace = "commission"

// Resultados possíveis de login e de execução de jobs
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultLimited = "rate_limited"
	ResultSkipped = "skipped"
)

type Metrics struct {
	Registry *prometheus.Registry

	httpRequestDuration *prometheus.HistogramVec
	computations        *prometheus.CounterVec
	kpiRowsSaved        prometheus.Counter
	loginAttempts       *prometheus.CounterVec
	jobRuns             *prometheus.CounterVec

	teamAchieved  prometheus.Gauge
	teamProjected prometheus.Gauge
	teamAvgScore  prometheus.Gauge
	teamYourComm  prometheus.Gauge
	teamOptComm   prometheus.Gauge
	activeAgents  prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duração das requisições HTTP por método e status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "status"},
		),
		computations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "computations_total",
				Help:      "Cálculos de métricas executados por origem.",
			},
			[]string{"source"},
		),
		kpiRowsSaved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kpi_rows_saved_total",
			Help:      "Linhas de KPI gravadas pelo painel administrativo.",
		}),
		loginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_attempts_total",
				Help:      "Tentativas de login administrativo por resultado.",
			},
			[]string{"result"},
		),
		jobRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "job_runs_total",
				Help:      "Execuções dos jobs agendados por job e resultado.",
			},
			[]string{"job", "result"},
		),

		teamAchieved: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "team_achieved_net_deposit",
			Help: "Net deposit realizado pela equipe no último cálculo.",
		}),
		teamProjected: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "team_projected_net_deposit",
			Help: "Net deposit projetado para o fim do mês.",
		}),
		teamAvgScore: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "team_avg_score",
			Help: "Score médio da equipe.",
		}),
		teamYourComm: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "team_your_commission",
			Help: "Comissão total na tabela principal.",
		}),
		teamOptComm: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "team_opt_commission",
			Help: "Comissão total na tabela alternativa.",
		}),
		activeAgents: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "active_agents",
			Help: "Agentes ativos considerados no último cálculo.",
		}),
	}
}

// Handler expõe o registry no formato de exposição do prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

func (m *Metrics) ObserveHTTPRequest(method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestDuration.WithLabelValues(method, strconv.Itoa(status)).Observe(d.Seconds())
}

// ObserveComputation conta o cálculo e atualiza os gauges da equipe
func (m *Metrics) ObserveComputation(source string, agents int, team domain.TeamSummary) {
	if m == nil {
		return
	}
	m.computations.WithLabelValues(source).Inc()
	m.activeAgents.Set(float64(agents))
	m.teamAchieved.Set(team.TeamAchieved)
	m.teamProjected.Set(team.TotalProjected)
	m.teamAvgScore.Set(team.AvgScore)
	m.teamYourComm.Set(team.TotalYourComm)
	m.teamOptComm.Set(team.TotalOptComm)
}

func (m *Metrics) AddKPIRowsSaved(n int) {
	if m == nil {
		return
	}
	m.kpiRowsSaved.Add(float64(n))
}

func (m *Metrics) IncLoginAttempt(result string) {
	if m == nil {
		return
	}
	m.loginAttempts.WithLabelValues(result).Inc()
}

func (m *Metrics) IncJobRun(job, result string) {
	if m == nil {
		return
	}
	m.jobRuns.WithLabelValues(job, result).Inc()
}
