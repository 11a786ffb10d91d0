package cmd

import (
	"github.com/sessionctl/sessionctl/internal/model"
	"github.com/sessionctl/sessionctl/internal/output"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:         "show",
	Short:       "Show the saved session",
	Long:        "Print the saved session in restore order, with window titles decoded.",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{offlineAnnotation: "true"},
	RunE:        runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	snap, err := model.LoadSnapshot(app.paths.SessionFile)
	if err != nil {
		return err
	}
	return output.Fprint(cmd.OutOrStdout(), output.SessionEntries(snap))
}
