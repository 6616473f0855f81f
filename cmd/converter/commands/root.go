package commands

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"go-currency-converter"
	"go-currency-converter/config"
	"go-currency-converter/exchange"
	"go-currency-converter/interest"
	"go-currency-converter/metrics"
	"go-currency-converter/ratetable"
)

// app services shared by all commands, built before any command runs
type app struct {
	cfg      *config.Config
	logger   log.Logger
	registry *prometheus.Registry
	table    *ratetable.Table
	exchange exchange.Service
	interest interest.Service
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "converter",
		Short:        "Convert between currencies and project compound interest",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.AddCommand(
		convertCmd(a),
		interestCmd(a),
		ratesCmd(a),
		statsCmd(a),
		topCmd(a),
		liveCmd(a),
		serveCmd(a),
	)
	return root
}

func (a *app) init(logOutput io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	logger := log.NewLogfmtLogger(log.NewSyncWriter(logOutput))
	logger = level.NewFilter(logger, allowed(cfg.LogLevel))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	a.logger = logger

	a.registry = prometheus.NewRegistry()
	a.table = ratetable.Default()

	exchangeService := exchange.NewService(a.table)
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)
	exchangeService = exchange.NewInstrumentingService(metrics.NewService(a.registry, "exchange"), exchangeService)
	a.exchange = exchangeService

	interestService := interest.NewService()
	interestService = interest.NewLoggingService(log.With(logger, "component", "interest"), interestService)
	interestService = interest.NewInstrumentingService(metrics.NewService(a.registry, "interest"), interestService)
	a.interest = interestService

	return nil
}

func allowed(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// parseAmount reads a user-typed amount. Unparseable input becomes NaN so that
// validation reports it like any other invalid amount.
func parseAmount(s string) currency.Amount {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return currency.Amount(math.NaN())
	}
	return currency.Amount(f)
}

func parseCode(s string) currency.Code {
	return currency.Code(strings.ToUpper(strings.TrimSpace(s)))
}
