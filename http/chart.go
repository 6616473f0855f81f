package http

import (
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-kit/log/level"

	"go-currency-converter"
	"go-currency-converter/stats"
)

// chart produces HTTP handler rendering a bar chart of the highest-rate currencies
func (s *Server) chart() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		n, ok := s.topN(rw, r)
		if !ok {
			return
		}
		records, err := s.Exchange.Currencies(r.Context())
		if err != nil {
			s.encodeError(rw, err)
			return
		}

		var base currency.Code
		for _, rec := range records {
			if rec.IsBase() {
				base = rec.Code
			}
		}

		bar := rateChart(stats.TopN(records, n), base)

		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := bar.Render(rw); err != nil {
			level.Error(s.Logger).Log("msg", "failed chart rendering", "err", err)
		}
	}
}

// rateChart one bar per record, in the given order
func rateChart(records []currency.Record, base currency.Code) *charts.Bar {
	labels := make([]string, 0, len(records))
	data := make([]opts.BarData, 0, len(records))
	for _, r := range records {
		labels = append(labels, string(r.Code))
		data = append(data, opts.BarData{Name: r.Name, Value: float64(r.Rate)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Top %d currencies by rate", len(records)),
			Subtitle: fmt.Sprintf("units per 1 %v", base),
		}),
	)
	bar.SetXAxis(labels).AddSeries("Rate", data)
	return bar
}
