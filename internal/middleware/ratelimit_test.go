package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"gemini-gateway/config"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("Allows Within Budget", func(t *testing.T) {
		mw := New(noopLogger{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 60, Burst: 2})
		r := newTestRouter(mw)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "1.2.3.4:5678"
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})

	t.Run("Blocks Over Budget", func(t *testing.T) {
		mw := New(noopLogger{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 1, Burst: 1})
		r := newTestRouter(mw)

		first := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "1.2.3.4:5678"
		r.ServeHTTP(first, req)
		if first.Code != http.StatusOK {
			t.Fatalf("expected first request to pass, got %d", first.Code)
		}

		second := httptest.NewRecorder()
		req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req2.RemoteAddr = "1.2.3.4:5678"
		r.ServeHTTP(second, req2)
		if second.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", second.Code)
		}
	})

	t.Run("Separate Budgets Per Client", func(t *testing.T) {
		mw := New(noopLogger{}, config.RateLimitConfig{Enabled: true, RequestsPerMin: 1, Burst: 1})
		r := newTestRouter(mw)

		for _, addr := range []string{"1.1.1.1:1000", "2.2.2.2:2000"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = addr
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("client %s: expected 200, got %d", addr, w.Code)
			}
		}
	})

	t.Run("Disabled Passes Everything", func(t *testing.T) {
		mw := New(noopLogger{}, config.RateLimitConfig{Enabled: false, RequestsPerMin: 1, Burst: 1})
		r := newTestRouter(mw)

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "1.2.3.4:5678"
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}
	})
}

func TestRequestID(t *testing.T) {
	mw := New(noopLogger{}, config.RateLimitConfig{})
	r := newTestRouter(mw)

	t.Run("Generates ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Header().Get(RequestIDHeader) == "" {
			t.Errorf("expected generated request ID header")
		}
	})

	t.Run("Keeps Incoming ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "fixed-id")
		r.ServeHTTP(w, req)
		if got := w.Header().Get(RequestIDHeader); got != "fixed-id" {
			t.Errorf("expected incoming ID to be kept, got %q", got)
		}
	})
}
