package cmd

import (
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current session",
	Long: `Record every open application window (desktop, geometry, maximized and
hidden state, launch command and title) into the session file, replacing the
previous session. Windows whose command matches the blacklist are left out.`,
	Args: cobra.NoArgs,
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	_, err = m.Capture(commandContext(cmd))
	return err
}
