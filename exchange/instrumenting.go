package exchange

import (
	"context"
	"time"

	"go-currency-converter"
	"go-currency-converter/metrics"
)

// instrumentingService decorates an exchange.Service with request metrics
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

func (s *instrumentingService) Convert(ctx context.Context, amount currency.Amount, from currency.Code, to currency.Code) (result currency.ConversionResult, err error) {
	defer func(begin time.Time) {
		s.metrics.Observe("convert", begin, err)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}

func (s *instrumentingService) Currencies(ctx context.Context) (records []currency.Record, err error) {
	defer func(begin time.Time) {
		s.metrics.Observe("currencies", begin, err)
	}(time.Now())
	return s.next.Currencies(ctx)
}
