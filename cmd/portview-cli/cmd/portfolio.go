package cmd

import (
	"fmt"

	"github.com/nfrund/portview/internal/domain"
	"github.com/nfrund/portview/internal/modules/dashboard/view"
	"github.com/spf13/cobra"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio <user-id>",
	Short: "Print the holdings of one user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := loadDashboard()
		if err != nil {
			return err
		}
		user, err := board.Select(domain.UserID(args[0]))
		if err != nil {
			return fmt.Errorf("user %q: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, user.Label())
		if !user.HasPortfolio() {
			fmt.Fprintln(out, view.EmptyPortfolioText)
			return nil
		}
		for _, h := range user.Portfolio {
			fmt.Fprintf(out, "%-6s  Shares: %d\n", h.Symbol, h.Owned)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(portfolioCmd)
}
