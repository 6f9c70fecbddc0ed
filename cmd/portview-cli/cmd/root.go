package cmd

import (
	"fmt"
	"os"

	"github.com/nfrund/portview/internal/dashboard"
	"github.com/nfrund/portview/internal/dataset"
	"github.com/nfrund/portview/internal/logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	usersFile  string
	stocksFile string
	style      string

	// fs is where --users and --stocks are read from.
	fs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "portview-cli",
	Short: "Inspect portview datasets from the terminal",
	Long: `portview-cli reads the same users and stocks files as the portview server
and prints them for the terminal.

Without --users or --stocks the embedded sample dataset is used.

Use "portview-cli [command] --help" for more information about a command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.NewWithWriter(cmd.ErrOrStderr(), "text", "error")
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&usersFile, "users", "", "path to the users JSON file (default: embedded sample)")
	rootCmd.PersistentFlags().StringVar(&stocksFile, "stocks", "", "path to the stocks JSON file (default: embedded sample)")
	rootCmd.PersistentFlags().StringVar(&style, "style", "notty", "glamour style used for markdown output (dark, light, notty, ascii, auto)")
}

// loadDashboard builds a dashboard over the dataset selected by the flags.
func loadDashboard() (*dashboard.Dashboard, error) {
	data, err := dataset.Open(fs, usersFile, stocksFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return dashboard.New(data.Users, dashboard.NewCatalog(data.Stocks), dashboard.WithName("cli")), nil
}
