package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
	"github.com/vfg2006/commission-dashboard-api/pkg/metrics"
	"golang.org/x/time/rate"
)

// LoginRateLimiter limita as tentativas de login por IP
type LoginRateLimiter struct {
	mu             sync.Mutex
	limiters       map[string]*rate.Limiter
	limit          rate.Limit
	burst          int
	metrics        *metrics.Metrics
	trustedProxies TrustedProxies
	cleanupEvery   time.Duration
	lastCleanup    time.Time
	now            func() time.Time
}

// LimiterOption configura o LoginRateLimiter
type LimiterOption func(l *LoginRateLimiter)

// WithTrustedProxies faz o limitador ler o X-Forwarded-For somente quando a conexão vem desses proxies
func WithTrustedProxies(proxies []string) LimiterOption {
	return func(l *LoginRateLimiter) {
		l.trustedProxies = ParseTrustedProxies(proxies)
	}
}

func NewLoginRateLimiter(every time.Duration, burst int, m *metrics.Metrics, opts ...LimiterOption) *LoginRateLimiter {
	if every <= 0 {
		every = 2 * time.Second
	}
	if burst <= 0 {
		burst = 5
	}

	l := &LoginRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(every),
		burst:    burst,
		metrics:  m,
		// após esse tempo parado o balde já está cheio de novo
		cleanupEvery: every * time.Duration(burst),
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	l.lastCleanup = l.now()

	return l
}

func (l *LoginRateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastCleanup) >= l.cleanupEvery {
		l.cleanup(now)
	}

	limiter, exists := l.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = limiter
	}

	return limiter.AllowN(now, 1)
}

// cleanup descarta os baldes cheios; recriá-los dá o mesmo resultado
func (l *LoginRateLimiter) cleanup(now time.Time) {
	for ip, limiter := range l.limiters {
		if limiter.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, ip)
		}
	}
	l.lastCleanup = now
}

func (l *LoginRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Middleware é aplicado apenas na rota de login
func (l *LoginRateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := l.trustedProxies.ClientIP(r)

			if !l.allow(ip) {
				l.metrics.IncLoginAttempt(metrics.ResultLimited)
				log.ForContext(r.Context()).WithField("remote_ip", ip).Warn("Limite de tentativas de login atingido")
				apiErrors.WriteError(w, apiErrors.ErrTooManyLoginAttempts, "Muitas tentativas de login, tente novamente em instantes", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// TrustedProxies são as redes cujos cabeçalhos X-Forwarded-For são aceitos
type TrustedProxies []*net.IPNet

// ParseTrustedProxies aceita IPs ou CIDRs; entradas inválidas são ignoradas com aviso
func ParseTrustedProxies(entries []string) TrustedProxies {
	proxies := make(TrustedProxies, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				log.L.WithField("proxy", entry).Warn("Proxy confiável inválido, ignorando")
				continue
			}
			bits := 8 * net.IPv6len
			if ip.To4() != nil {
				ip, bits = ip.To4(), 8*net.IPv4len
			}
			proxies = append(proxies, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}

		_, network, err := net.ParseCIDR(entry)
		if err != nil {
			log.L.WithField("proxy", entry).Warn("Proxy confiável inválido, ignorando")
			continue
		}
		proxies = append(proxies, network)
	}

	return proxies
}

func (p TrustedProxies) contains(ip net.IP) bool {
	for _, network := range p {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIP devolve o IP da conexão. Se ela vier de um proxy confiável, percorre o
// X-Forwarded-For da direita para a esquerda e usa o primeiro endereço que não é proxy.
func (p TrustedProxies) ClientIP(r *http.Request) string {
	client := ClientIP(r)

	ip := net.ParseIP(client)
	if ip == nil || !p.contains(ip) {
		return client
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := net.ParseIP(strings.TrimSpace(hops[i]))
		if hop == nil {
			break
		}

		client = hop.String()
		if !p.contains(hop) {
			break
		}
	}

	return client
}

// ClientIP devolve o IP da conexão, sem considerar cabeçalhos enviados pelo cliente
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
