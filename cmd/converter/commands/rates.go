package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"go-currency-converter/format"
)

func ratesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "List supported currencies and their rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.exchange.Currencies(cmd.Context())
			if err != nil {
				return err
			}

			base := a.table.Base().Code
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "CODE\tNAME\tSYMBOL\tPER 1 %v\n", base)
			for _, r := range records {
				fmt.Fprintf(tw, "%v\t%v\t%v\t%v\n", r.Code, r.Name, r.Symbol, format.Amount(float64(r.Rate)))
			}
			return tw.Flush()
		},
	}
	return cmd
}
