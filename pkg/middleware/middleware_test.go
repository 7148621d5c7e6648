package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commission-dashboard-api/internal/config"
	"github.com/vfg2006/commission-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
	"github.com/vfg2006/commission-dashboard-api/pkg/metrics"
)

func init() {
	log.SetupTestLogger()
}

func newAuthService(sessionToken string) authenticating.Authenticator {
	return authenticating.NewService(config.Auth{
		Secret:        "segredo",
		AdminUsername: "admin",
		AdminPassword: "senha",
		SessionToken:  sessionToken,
	})
}

func okHandler(actor *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor != nil {
			*actor = ActorFromContext(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	service := newAuthService("sessao-valida")
	session, err := service.Login("admin", "senha")
	require.NoError(t, err)

	tests := []struct {
		name             string
		path             string
		cookie           string
		authorization    string
		expectedStatus   int
		expectedLocation string
		expectedActor    string
	}{
		{name: "Rota pública", path: "/", expectedStatus: http.StatusOK, expectedActor: "system"},
		{name: "Dashboard JSON público", path: "/v1/dashboard", expectedStatus: http.StatusOK, expectedActor: "system"},
		{name: "Admin sem sessão redireciona", path: "/admin", expectedStatus: http.StatusTemporaryRedirect, expectedLocation: "/login"},
		{name: "API admin sem sessão redireciona", path: "/v1/admin/kpi", expectedStatus: http.StatusTemporaryRedirect, expectedLocation: "/login"},
		{name: "Cookie inválido", path: "/admin", cookie: "errado", expectedStatus: http.StatusTemporaryRedirect, expectedLocation: "/login"},
		{name: "Cookie válido", path: "/admin", cookie: "sessao-valida", expectedStatus: http.StatusOK, expectedActor: "admin_session"},
		{name: "Bearer válido", path: "/v1/admin/panel", authorization: "Bearer " + session.Token, expectedStatus: http.StatusOK, expectedActor: "admin"},
		{name: "Bearer inválido", path: "/v1/admin/panel", authorization: "Bearer abc", expectedStatus: http.StatusTemporaryRedirect, expectedLocation: "/login"},
		{name: "Authorization sem Bearer", path: "/v1/admin/panel", authorization: session.Token, expectedStatus: http.StatusTemporaryRedirect, expectedLocation: "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var actor string
			handler := AuthMiddleware(service)(okHandler(&actor))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			}
			if tt.expectedActor != "" {
				assert.Equal(t, tt.expectedActor, actor)
			}
		})
	}
}

func TestAuthMiddleware_TokenVazioNuncaAutentica(t *testing.T) {
	handler := AuthMiddleware(newAuthService(""))(okHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: ""})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
}

func TestIsAdminPath(t *testing.T) {
	assert.True(t, IsAdminPath("/admin"))
	assert.True(t, IsAdminPath("/admin/kpi"))
	assert.True(t, IsAdminPath("/v1/admin/config"))
	assert.False(t, IsAdminPath("/"))
	assert.False(t, IsAdminPath("/login"))
	assert.False(t, IsAdminPath("/v1/dashboard"))
}

func TestCors(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		origin         string
		method         string
		expectedOrigin string
		expectedStatus int
	}{
		{name: "Origem permitida", allowed: []string{"http://localhost:3000"}, origin: "http://localhost:3000", method: http.MethodGet, expectedOrigin: "http://localhost:3000", expectedStatus: http.StatusOK},
		{name: "Origem não permitida", allowed: []string{"http://localhost:3000"}, origin: "http://evil.com", method: http.MethodGet, expectedOrigin: "", expectedStatus: http.StatusOK},
		{name: "Curinga", allowed: []string{"*"}, origin: "http://qualquer.com", method: http.MethodGet, expectedOrigin: "http://qualquer.com", expectedStatus: http.StatusOK},
		{name: "Preflight", allowed: []string{"*"}, origin: "http://qualquer.com", method: http.MethodOptions, expectedOrigin: "http://qualquer.com", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := Cors(tt.allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(tt.method, "/v1/dashboard", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.method != http.MethodOptions, called)
		})
	}
}

func TestLoginRateLimiter(t *testing.T) {
	limiter := NewLoginRateLimiter(time.Hour, 2, metrics.New())
	handler := limiter.Middleware()(okHandler(nil))

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/login", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1"))

	// outro IP tem o próprio balde
	assert.Equal(t, http.StatusOK, send("10.0.0.2"))
}

func TestLoginRateLimiter_IgnoraXForwardedForDoCliente(t *testing.T) {
	limiter := NewLoginRateLimiter(time.Hour, 2, metrics.New())
	handler := limiter.Middleware()(okHandler(nil))

	allowed := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/v1/login", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.1.0.%d", i))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			allowed++
		}
	}

	assert.Equal(t, 2, allowed)
	assert.Equal(t, 1, limiter.size())
}

func TestLoginRateLimiter_ProxyConfiavel(t *testing.T) {
	limiter := NewLoginRateLimiter(time.Hour, 1, metrics.New(), WithTrustedProxies([]string{"10.0.0.0/8"}))
	handler := limiter.Middleware()(okHandler(nil))

	send := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/v1/login", nil)
		req.RemoteAddr = "10.0.0.5:4000"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.5"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.5"))
	// o valor forjado à esquerda não troca o balde
	assert.Equal(t, http.StatusTooManyRequests, send("1.2.3.4, 203.0.113.5"))
	assert.Equal(t, http.StatusOK, send("203.0.113.6"))
}

func TestLoginRateLimiter_DescartaBaldesOciosos(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	limiter := NewLoginRateLimiter(time.Minute, 2, metrics.New(), func(l *LoginRateLimiter) {
		l.now = func() time.Time { return now }
	})

	for i := 0; i < 10; i++ {
		assert.True(t, limiter.allow(fmt.Sprintf("198.51.100.%d", i)))
	}
	assert.Equal(t, 10, limiter.size())

	// esvaziado perto da limpeza, ainda não se recuperou e precisa sobreviver a ela
	now = now.Add(90 * time.Second)
	assert.True(t, limiter.allow("203.0.113.9"))
	assert.True(t, limiter.allow("203.0.113.9"))
	assert.False(t, limiter.allow("203.0.113.9"))

	now = now.Add(30 * time.Second)
	assert.True(t, limiter.allow("192.0.2.1"))

	assert.Equal(t, 2, limiter.size())
	assert.False(t, limiter.allow("203.0.113.9"))
}

func TestClientIP(t *testing.T) {
	proxies := ParseTrustedProxies([]string{"10.0.0.1", "172.16.0.0/12", "lixo", ""})
	require.Len(t, proxies, 2)

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		expected   string
	}{
		{name: "Sem cabeçalho", remoteAddr: "192.168.0.10:1234", expected: "192.168.0.10"},
		{name: "Cliente direto não pode forjar", remoteAddr: "192.168.0.10:1234", forwarded: "203.0.113.5", expected: "192.168.0.10"},
		{name: "Proxy confiável", remoteAddr: "10.0.0.1:80", forwarded: "203.0.113.5", expected: "203.0.113.5"},
		{name: "Cadeia de proxies", remoteAddr: "10.0.0.1:80", forwarded: "1.1.1.1, 203.0.113.5, 172.16.0.3", expected: "203.0.113.5"},
		{name: "Proxy sem cabeçalho", remoteAddr: "10.0.0.1:80", expected: "10.0.0.1"},
		{name: "Entrada inválida no cabeçalho", remoteAddr: "10.0.0.1:80", forwarded: "abc", expected: "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			assert.Equal(t, tt.expected, proxies.ClientIP(req))
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.0.10:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.5")
	assert.Equal(t, "192.168.0.10", ClientIP(req))
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(log.HeaderCorrelationID, "req-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(log.HeaderCorrelationID))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(log.HeaderCorrelationID))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	handler := MetricsMiddleware(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	out := httptest.NewRecorder()
	m.Handler().ServeHTTP(out, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, out.Body.String(), `status="404"`)
}
