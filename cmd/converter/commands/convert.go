package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go-currency-converter"
	"go-currency-converter/format"
)

func convertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount between two currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd.Context(), cmd.OutOrStdout(), parseAmount(args[0]), parseCode(args[1]), parseCode(args[2]))
		},
	}
	return cmd
}

// convert prints the conversion chain, the result and the direct rate
func (a *app) convert(ctx context.Context, w io.Writer, amount currency.Amount, from, to currency.Code) error {
	result, err := a.exchange.Convert(ctx, amount, from, to)
	if err != nil {
		return err
	}

	for _, step := range result.Chain {
		fmt.Fprintln(w, step)
	}
	symbol := ""
	if r, ok := a.table.Lookup(to); ok {
		symbol = r.Symbol
	}
	fmt.Fprintf(w, "Result: %v%v (%v)\n", symbol, format.Amount(float64(result.ConvertedAmount)), to)
	fmt.Fprintf(w, "1 %v = %v %v\n", from, format.Amount(float64(result.DirectRate)), to)
	return nil
}
