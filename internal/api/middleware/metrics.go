package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/petlink/PetLink-BookingService/pkg/metrics"
)

// statusRecorder запоминает статус ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics собирает счётчики и гистограммы HTTP запросов.
// В качестве route используется шаблон mux маршрута,
// чтобы не плодить кардинальность по конкретным ID
func Metrics(collector *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			route := routeTemplate(r)
			duration := time.Since(start).Seconds()

			collector.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(recorder.status)).Inc()
			collector.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(duration)
		})
	}
}

func routeTemplate(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if template, err := current.GetPathTemplate(); err == nil {
			return template
		}
	}
	return "unknown"
}
