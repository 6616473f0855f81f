package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-currency-converter/format"
	"go-currency-converter/stats"
)

func statsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise the rate table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.exchange.Currencies(cmd.Context())
			if err != nil {
				return err
			}
			s := stats.Compute(records)
			base := a.table.Base().Code

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Currencies: %d\n", s.Count)
			fmt.Fprintf(w, "Stronger than %v: %d\n", base, s.StrongerThanBase)
			fmt.Fprintf(w, "Weaker than %v: %d\n", base, s.WeakerThanBase)
			fmt.Fprintf(w, "Average rate: %v\n", format.Amount(float64(s.AverageRate)))
			if s.Max != nil && s.Min != nil {
				fmt.Fprintf(w, "Highest rate: %v (%v) %v\n", s.Max.Code, s.Max.Name, format.Amount(float64(s.Max.Rate)))
				fmt.Fprintf(w, "Lowest rate: %v (%v) %v\n", s.Min.Code, s.Min.Name, format.Amount(float64(s.Min.Rate)))
			}
			return nil
		},
	}
	return cmd
}
