package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"go-currency-converter/format"
)

func interestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interest <principal> <ratePercent> <years>",
		Short: "Project compound interest, compounded yearly",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal := parseAmount(args[0])
			ratePercent := float64(parseAmount(args[1]))
			// not a whole number falls outside the valid range and is rejected as such
			years, err := strconv.Atoi(strings.TrimSpace(args[2]))
			if err != nil {
				years = 0
			}

			result, err := a.interest.Compute(cmd.Context(), principal, ratePercent, years)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, step := range result.Steps {
				fmt.Fprintln(w, step)
			}
			fmt.Fprintf(w, "Future value: %v\n", format.Money(float64(result.FutureValue)))
			return nil
		},
	}
	return cmd
}
