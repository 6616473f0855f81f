package exchange

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-currency-converter"
	"go-currency-converter/validate"
)

// loggingService decorates an exchange.Service with logging
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

func (s *loggingService) Convert(ctx context.Context, amount currency.Amount, from currency.Code, to currency.Code) (result currency.ConversionResult, err error) {
	defer func(begin time.Time) {
		leveled(s.logger, err).Log(
			"method", "convert",
			"amount", amount,
			"from", from,
			"to", to,
			"rate", result.DirectRate,
			"converted_amount", result.ConvertedAmount,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}

func (s *loggingService) Currencies(ctx context.Context) (records []currency.Record, err error) {
	defer func(begin time.Time) {
		leveled(s.logger, err).Log(
			"method", "currencies",
			"count", len(records),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Currencies(ctx)
}

// leveled picks the log level for a call outcome. Rejected input is expected, anything else is a defect.
func leveled(logger log.Logger, err error) log.Logger {
	if err == nil {
		return level.Debug(logger)
	}
	if _, ok := validate.KindOf(err); ok {
		return level.Info(logger)
	}
	return level.Error(logger)
}
