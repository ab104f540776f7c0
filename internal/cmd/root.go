// Package cmd holds the demo's command line interface.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/kirchner/dropdown-menu-sub000/internal/log"
	"github.com/kirchner/dropdown-menu-sub000/internal/tui"
	"github.com/kirchner/dropdown-menu-sub000/internal/version"
)

func init() {
	rootCmd.Flags().BoolP("debug", "d", false, "Debug logging")
	rootCmd.Flags().String("log-file", "", "Log file (default: dropdown-demo.log in the cache dir)")
	rootCmd.Flags().Int("entries", 123457, "Number of entries in the search column")
}

var rootCmd = &cobra.Command{
	Use:   "dropdown-demo",
	Short: "Showcase for the dropdown-menu widgets",
	Long: `dropdown-demo renders the three dropdown variants side by side: a
plain single-select menu with type-ahead, a filterable search over a
very large entry set, and a clearable menu. Navigate with the keyboard
or the mouse.`,
	Example: `
# Run the demo
dropdown-demo

# Run with debug logging
dropdown-demo -d

# Run with a smaller search column
dropdown-demo --entries 5000
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		logFile, _ := cmd.Flags().GetString("log-file")
		entries, _ := cmd.Flags().GetInt("entries")

		if logFile == "" {
			logFile = defaultLogFile()
		}
		log.Setup(logFile, debug)
		slog.Info("starting", "version", version.Version, "entries", entries)

		program := tea.NewProgram(
			tui.New(entries),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
			tea.WithMouseCellMotion(),
			tea.WithFilter(tui.MouseEventFilter),
			tea.WithReportFocus(),
		)

		if _, err := program.Run(); err != nil {
			slog.Error("TUI run error", "error", err)
			return fmt.Errorf("TUI error: %v", err)
		}
		return nil
	},
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "dropdown-demo.log"
	}
	return filepath.Join(dir, "dropdown-demo", "demo.log")
}

func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
