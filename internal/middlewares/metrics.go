package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RequestObserver records the duration of served requests.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// unmatchedRoute labels requests that did not match any registered route.
const unmatchedRoute = "unmatched"

// MetricsMiddleware reports every request to m, labelled by its chi route pattern.
func MetricsMiddleware(m RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			m.ObserveRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
