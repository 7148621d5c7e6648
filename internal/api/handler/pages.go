package handler

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/vfg2006/commission-dashboard-api/internal/domain"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
	"github.com/vfg2006/commission-dashboard-api/pkg/middleware"
	"github.com/vfg2006/commission-dashboard-api/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"currency":   utils.FormatCurrency,
	"percent":    utils.FormatPercent,
	"points":     utils.FormatPoints,
	"pctClass":   pctTargetClass,
	"oneDecimal": func(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) },
	// taxas das faixas são frações (0.015 -> 1.5%)
	"rate": func(f float64) string { return utils.FormatPercent(f * 100) },
}

var pages = map[string]*template.Template{
	"dashboard": parsePage("dashboard.html"),
	"login":     parsePage("login.html"),
	"admin":     parsePage("admin.html"),
}

func parsePage(name string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

// pctTargetClass colore o % da meta: verde a partir de 100, âmbar a partir de 75
func pctTargetClass(pct float64) string {
	switch {
	case pct >= 100:
		return "green"
	case pct >= 75:
		return "amber"
	default:
		return "red"
	}
}

type loginPageData struct {
	LoginAPI  string
	AdminPage string
}

type adminPageData struct {
	Panel   *domain.AdminPanelResponse
	SaveAPI string
}

// renderPage executa o template num buffer para não enviar HTML pela metade em caso de erro
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := pages[name].Execute(&buf, data); err != nil {
		log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path).Error("Erro ao renderizar página")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// DashboardPage é a visão pública e somente leitura da equipe
func DashboardPage(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.GetDashboard(r.Context())
		switch {
		case errors.Is(err, dashboard.ErrConfigNotFound):
			resp = &domain.DashboardResponse{}
		case err != nil:
			log.ForContext(r.Context()).WithError(err).Error("Erro ao montar dashboard")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		renderPage(w, r, "dashboard", resp)
	}
}

func LoginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, "login", loginPageData{LoginAPI: "/v1/login", AdminPage: "/admin"})
	}
}

// AdminPage é a grade de KPIs; só é alcançada com sessão administrativa válida
func AdminPage(service dashboard.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		panel, err := service.GetAdminPanel(r.Context())
		switch {
		case errors.Is(err, dashboard.ErrConfigNotFound):
			panel = nil
		case err != nil:
			log.ForContext(r.Context()).WithError(err).Error("Erro ao montar painel administrativo")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		log.ForContext(r.Context()).WithField("actor", middleware.ActorFromContext(r.Context())).Debug("Painel administrativo aberto")
		renderPage(w, r, "admin", adminPageData{Panel: panel, SaveAPI: "/v1/admin/kpi"})
	}
}
