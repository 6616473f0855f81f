// Package metrics holds the Prometheus collectors shared by the instrumenting
// service decorators.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-currency-converter/validate"
)

const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Service request counter and latency histogram for one service
type Service struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewService registers the collectors for subsystem on reg
func NewService(reg prometheus.Registerer, subsystem string) *Service {
	factory := promauto.With(reg)
	return &Service{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "converter",
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "Total number of requests by method, outcome and validation failure kind",
			},
			[]string{"method", "outcome", "kind"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "converter",
				Subsystem: subsystem,
				Name:      "request_duration_seconds",
				Help:      "Duration of requests by method",
				Buckets:   []float64{.00001, .0001, .001, .01, .1},
			},
			[]string{"method"},
		),
	}
}

// Observe records one call of method that started at begin and ended with err
func (s *Service) Observe(method string, begin time.Time, err error) {
	outcome, kind := Outcome(err)
	s.requests.WithLabelValues(method, outcome, kind).Inc()
	s.latency.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}

// Requests the counter for method, outcome and kind
func (s *Service) Requests(method, outcome, kind string) prometheus.Counter {
	return s.requests.WithLabelValues(method, outcome, kind)
}

// Outcome classifies err as ok, invalid (with the failure kind) or error
func Outcome(err error) (outcome string, kind string) {
	if err == nil {
		return OutcomeOK, ""
	}
	if k, ok := validate.KindOf(err); ok {
		return OutcomeInvalid, string(k)
	}
	return OutcomeError, ""
}
