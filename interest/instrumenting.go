package interest

import (
	"context"
	"time"

	"go-currency-converter"
	"go-currency-converter/metrics"
)

// instrumentingService decorates an interest.Service with request metrics
type instrumentingService struct {
	metrics *metrics.Service
	next    Service
}

// NewInstrumentingService returns a new instance of an instrumenting Service
func NewInstrumentingService(m *metrics.Service, s Service) Service {
	return &instrumentingService{
		metrics: m,
		next:    s,
	}
}

func (s *instrumentingService) Compute(ctx context.Context, principal currency.Amount, ratePercent float64, years int) (result currency.CompoundInterestResult, err error) {
	defer func(begin time.Time) {
		s.metrics.Observe("compute", begin, err)
	}(time.Now())
	return s.next.Compute(ctx, principal, ratePercent, years)
}
