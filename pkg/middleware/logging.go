package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/commission-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/commission-dashboard-api/pkg/log"
)

// acima disso a requisição é registrada como lenta
const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware propaga o ID de correlação e registra início e fim de cada requisição
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(log.HeaderCorrelationID))
			r = r.WithContext(ctx)
			w.Header().Set(log.HeaderCorrelationID, correlationID)

			fields := log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"area":   requestArea(r.URL.Path),
			}

			logger := log.ForContext(ctx).WithFields(fields)
			if !log.IsDevelopment() {
				logger.WithFields(log.Fields{
					"remote_addr":  ClientIP(r),
					"query":        r.URL.RawQuery,
					"user_agent":   r.UserAgent(),
					"content_type": r.Header.Get("Content-Type"),
				}).Info("Requisição iniciada")
			} else {
				logger.Info("→ Iniciando requisição")
			}

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			done := logger.WithFields(log.Fields{
				"status_code": lrw.statusCode,
				"duration_ms": elapsed.Milliseconds(),
			})

			logByStatus(done, lrw.statusCode, completionMessage(lrw.statusCode, elapsed))

			if elapsed > slowRequestThreshold {
				done.Warnf("Requisição lenta: %s", formatDuration(elapsed))
			}
		})
	}
}

func requestArea(path string) string {
	if IsAdminPath(path) {
		return "admin"
	}
	return "public"
}

func completionMessage(status int, elapsed time.Duration) string {
	if !log.IsDevelopment() {
		return "Requisição finalizada"
	}

	symbol := "✓"
	if status >= http.StatusBadRequest {
		symbol = "✗"
	}
	return fmt.Sprintf("%s Completada em %s", symbol, formatDuration(elapsed))
}

func logByStatus(logger log.Logger, status int, msg string) {
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(msg)
	case status >= http.StatusBadRequest:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter guarda o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics dos handlers e responde SRV_001
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  err,
					"method": r.Method,
					"path":   r.URL.Path,
				})

				if log.IsDevelopment() {
					logger.Error("❌ PANIC na aplicação")
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("Erro não tratado na aplicação")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
