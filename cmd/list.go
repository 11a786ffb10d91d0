package cmd

import (
	"fmt"

	"github.com/sessionctl/sessionctl/internal/output"
	"github.com/sessionctl/sessionctl/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List open windows",
	Long:  "List open windows with their desktop, PID, geometry, title and process command line.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("all", false, "Include windows pinned to every desktop and windows without a process")
}

func runList(cmd *cobra.Command, args []string) error {
	if app.provider == nil || app.provider.Reader == nil {
		return fmt.Errorf("reader not available on this platform")
	}
	all, _ := cmd.Flags().GetBool("all")

	windows, err := app.provider.Reader.ListWindows(commandContext(cmd), platform.ListOptions{All: all})
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), output.WindowEntries(windows, app.provider.Processes.CommandLine))
}
