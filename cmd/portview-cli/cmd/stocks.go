package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var stocksCmd = &cobra.Command{
	Use:   "stocks",
	Short: "List the stock catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := loadDashboard()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SYMBOL\tNAME\tSECTOR")
		fmt.Fprintln(w, "------\t----\t------")
		for _, s := range board.Catalog().All() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Symbol, s.Name, s.Sector)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(stocksCmd)
}
