package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"menuvroom/internal/eventbus"
	"menuvroom/internal/launcher"
	"menuvroom/internal/selection"
	"menuvroom/internal/ui"
)

const logFileName = "menuvroom.log"

// Options holds the persistent flags
type Options struct {
	ConfigPath string
	Mode       string
}

// NewRootCommand builds the CLI. With no subcommand it runs an interactive
// launcher session.
func NewRootCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:           "menuvroom",
		Short:         "Fast application launcher for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to the config file")
	cmd.PersistentFlags().StringVarP(&opts.Mode, "mode", "m", "", "ranking mode: contains|similarity")

	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newDirsCommand(opts))
	cmd.AddCommand(newQueryCommand(opts))
	cmd.AddCommand(newRebuildCommand(opts))
	cmd.AddCommand(newConfigCommand(opts))
	return cmd
}

func runInteractive(cmd *cobra.Command, opts *Options) error {
	s, err := newSession(opts)
	if err != nil {
		return err
	}

	// the alt screen owns the terminal, so logs go to a file
	logFile, err := openLogFile(s.cacheDir)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	catalog, err := s.catalog(cmd.Context(), false)
	if err != nil {
		return err
	}

	model := ui.NewModel(selection.NewController(catalog, s.ranker), s.cfg.UISettings)
	model.SetStatus(s.report.Summary(catalog.Len()))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run ui: %w", err)
	}

	finishSession(s.bus, launcher.New(s.dirs...), model.Result())
	return nil
}

// finishSession launches a committed entry. A launch failure is logged and
// published; the session ends either way.
func finishSession(bus eventbus.EventBus, spawner launcher.Launcher, res selection.Result) {
	ended := eventbus.SessionEndedEvent{}
	if res.Outcome == selection.Commit {
		ended.Committed = true
		ended.Command = res.Chosen.Command
		log.Printf("Launching %q", res.Chosen.Command)
		if err := spawner.Spawn(res.Chosen.Command); err != nil {
			log.Printf("Failed to launch %q: %v", res.Chosen.Command, err)
			bus.Publish(eventbus.LaunchFailedEvent{Command: res.Chosen.Command, Err: err})
		}
	}
	bus.Publish(ended)
}

func openLogFile(dir string) (io.WriteCloser, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
