package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/rileylov/dragboard/board"
	"github.com/rileylov/dragboard/layout"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dragboard",
		Short: "Drag boxes around the terminal with the mouse",
		Long: `dragboard shows absolutely positioned boxes and lets you move them
with the mouse. Each box moves freely, horizontally or vertically.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config
			if err := parseEnv(&cfg); err != nil {
				return err
			}
			if err := applyFlags(cmd.Flags(), &cfg); err != nil {
				return err
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	rootCmd.Flags().String("layout", "", "layout file to load and save (TOML)")
	rootCmd.Flags().String("mode", "", "axis mode for boxes without one: free, horizontal or vertical")
	rootCmd.Flags().String("log-file", "", "write logs to this file")
	rootCmd.Flags().String("log-level", "info", "log level: debug, info, warn or error")
	rootCmd.Flags().Bool("no-mouse", false, "start with mouse tracking off")

	rootCmd.AddCommand(layoutCmd(), versionCmd())
	return rootCmd
}

func layoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the sample layout as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return layout.Default().Encode(cmd.OutOrStdout())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dragboard %s (%s)\n", version, commit)
		},
	}
}

// setupLogging sends slog output to cfg.LogFile, or nowhere, since the
// terminal belongs to the board.
func setupLogging(cfg config) (func() error, error) {
	if cfg.LogFile == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return func() error { return nil }, nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "dragboard")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel})))
	return f.Close, nil
}

// closeLogInto runs closeLog and reports its error through err, unless err
// already holds one.
func closeLogInto(err *error, closeLog func() error) {
	if cerr := closeLog(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close log: %w", cerr)
	}
}

func run(cfg config) (err error) {
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLogInto(&err, closeLog)

	l, err := cfg.loadLayout()
	if err != nil {
		return err
	}

	// Initialize a global zone manager, so we don't have to pass around the manager
	// throughout components.
	zone.NewGlobal()

	m, err := board.New(l, board.WithPath(cfg.Layout), board.WithMode(cfg.Mode))
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	} else {
		zone.SetEnabled(false)
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	slog.Info("board closed")
	return nil
}
