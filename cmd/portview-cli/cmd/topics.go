package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/nfrund/portview/internal/dashboard"
	"github.com/nfrund/portview/internal/topicmgr"
	"github.com/spf13/cobra"
)

var topicsFormat string

// topicDisplay is the JSON shape of one topic.
type topicDisplay struct {
	Name        string `json:"name"`
	Module      string `json:"module"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the message bus topics published by the server",
	Long: `List the topics the server publishes on its message bus.

Examples:
  portview-cli topics                # table format
  portview-cli topics --format json  # JSON format`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := topicmgr.NewRegistry()
		if err := dashboard.RegisterTopics(registry); err != nil {
			return err
		}
		topics := registry.List()

		switch topicsFormat {
		case "table":
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMODULE\tDESCRIPTION")
			fmt.Fprintln(w, "----\t------\t-----------")
			for _, t := range topics {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name(), t.Module(), t.Description())
			}
			return w.Flush()
		case "json":
			out := make([]topicDisplay, len(topics))
			for i, t := range topics {
				out[i] = topicDisplay{
					Name:        t.Name(),
					Module:      t.Module(),
					Description: t.Description(),
					Example:     t.Example(),
				}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		default:
			return fmt.Errorf("unsupported output format %q, use table or json", topicsFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
	topicsCmd.Flags().StringVarP(&topicsFormat, "format", "f", "table", "Output format (table, json)")
}
