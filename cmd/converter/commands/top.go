package commands

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go-currency-converter/format"
	"go-currency-converter/stats"
)

const barWidth = 40

func topCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top [n]",
		Short: "Chart the currencies with the highest rates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := a.cfg.ChartTopN
			if len(args) == 1 {
				var err error
				n, err = strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("n must be a positive integer, got %q", args[0])
				}
			}

			records, err := a.exchange.Currencies(cmd.Context())
			if err != nil {
				return err
			}
			top := stats.TopN(records, n)
			if len(top) == 0 {
				return nil
			}

			highest := float64(top[0].Rate)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range top {
				fmt.Fprintf(tw, "%v\t%v\t%v\n", r.Code, format.Amount(float64(r.Rate)), bar(float64(r.Rate), highest, barWidth))
			}
			return tw.Flush()
		},
	}
	return cmd
}

// bar a text bar of width proportional to value/highest
func bar(value, highest float64, width int) string {
	if highest <= 0 {
		return ""
	}
	n := int(value / highest * float64(width))
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
