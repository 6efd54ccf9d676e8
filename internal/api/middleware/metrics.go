package middleware

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/recruitment-api/internal/dependencies/clock"
	"github.com/mcoot/recruitment-api/internal/metrics"
	"github.com/mcoot/recruitment-api/internal/middleware"
)

// Metrics records request counts and latencies labelled by route template,
// so /candidates/{id} is one series regardless of the id requested.
func Metrics(m *metrics.Metrics, clk clock.Clock) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := clk.Now()
			wrapped := middleware.WrapResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			m.ObserveHTTPRequest(r.Method, routeTemplate(r), strconv.Itoa(wrapped.Status()), clk.Now().Sub(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tmpl, err := route.GetPathTemplate(); err == nil {
			return tmpl
		}
	}
	return "unmatched"
}
