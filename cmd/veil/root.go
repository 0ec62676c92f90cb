package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/veiltui/veil/config"
	"github.com/veiltui/veil/internal/demo"
	"github.com/veiltui/veil/logging"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "veil",
		Short:         "Veil is a terminal widget and overlay toolkit; this binary runs its demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", ".veil.yaml", "Path to the configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runDemo(flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	logger, err := logging.New(logging.Options{Level: level})
	if err != nil {
		return err
	}

	program := tea.NewProgram(
		demo.New(cfg, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // backdrop clicks need mouse support
	)

	_, err = program.Run()
	return err
}
