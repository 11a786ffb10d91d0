package cmd

import (
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Relaunch saved applications that are not running",
	Long: `Launch every saved application that is not already running and move its
window to the saved geometry and desktop. An open window counts for one saved
window with the same command; open windows are not moved.`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	_, err = m.Restore(commandContext(cmd))
	return err
}
