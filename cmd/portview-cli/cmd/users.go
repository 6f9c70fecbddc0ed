package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users with the number of holdings they own",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := loadDashboard()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tHOLDINGS")
		fmt.Fprintln(w, "--\t----\t--------")
		for _, u := range board.Users() {
			fmt.Fprintf(w, "%s\t%s\t%d\n", u.ID, u.Label(), len(u.Portfolio))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
