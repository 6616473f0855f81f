package interest

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-currency-converter"
)

// loggingService decorates an interest.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Compute(ctx context.Context, principal currency.Amount, ratePercent float64, years int) (result currency.CompoundInterestResult, err error) {
	defer func(begin time.Time) {
		logger := level.Debug(s.logger)
		if err != nil {
			logger = level.Info(s.logger)
		}
		logger.Log(
			"method", "compute",
			"principal", principal,
			"rate_percent", ratePercent,
			"years", years,
			"future_value", result.FutureValue,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Compute(ctx, principal, ratePercent, years)
}
