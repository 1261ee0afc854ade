package cmd

import (
	"fmt"

	"github.com/Sruthika-k/Bragboard/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive BragBoard UI",
	Long: `Open the interactive terminal UI. This is also what running bragboard
with no subcommand does.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	program := tea.NewProgram(
		tui.NewApp(a.cfg, a.client, a.store, a.log),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	return nil
}
