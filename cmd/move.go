package cmd

import (
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move open windows to their saved positions",
	Long: `Move windows that are already open back to their saved geometry and
desktop and reapply their saved state. Windows are matched by title; nothing
is launched.`,
	Args: cobra.NoArgs,
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	_, err = m.Reposition(commandContext(cmd))
	return err
}
