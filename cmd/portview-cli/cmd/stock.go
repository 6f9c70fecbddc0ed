package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/nfrund/portview/internal/domain"
	"github.com/spf13/cobra"
)

var stockCmd = &cobra.Command{
	Use:   "stock <symbol>",
	Short: "Print the details card of one stock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := loadDashboard()
		if err != nil {
			return err
		}
		stock, err := board.ViewStock(args[0])
		if err != nil {
			return fmt.Errorf("stock %q: %w", args[0], err)
		}

		out, err := renderMarkdown(stockMarkdown(stock), style)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(stockCmd)
}

// stockMarkdown renders the stock card as markdown.
func stockMarkdown(s domain.Stock) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", s.Name, s.Symbol)
	fmt.Fprintln(&b, "| Field | Value |")
	fmt.Fprintln(&b, "|:---|:---|")
	fmt.Fprintf(&b, "| Sector | %s |\n", s.Sector)
	fmt.Fprintf(&b, "| Industry | %s |\n", s.SubIndustry)
	fmt.Fprintf(&b, "| Address | %s |\n", s.Address)
	return b.String()
}

func renderMarkdown(md, style string) (string, error) {
	opt := glamour.WithStandardStyle(style)
	if style == "auto" {
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render(md)
}
