// Package cli implements the gridpath command-line interface.
//
// # Commands
//
//   - solve: run one search on a board read from flags or stdin and print it
//   - play: edit a board and watch searches step by step in the terminal
//   - serve: expose the engine over HTTP
//   - algorithms: list strategy names
//
// # Configuration
//
// --config points at a TOML file (see package config); flags override it.
//
// # Logging
//
// --verbose (-v) switches to debug level. The logger travels in the command
// context; library packages never log.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Exit codes beyond 0 and 1.
const (
	// ExitExhausted reports a search that ended without a path.
	ExitExhausted = 2
	// ExitCancelled follows the shell convention for SIGINT.
	ExitCancelled = 130
)

// ExitError carries a process exit code out of a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode maps err to a process exit code: 0 for nil, the code of an
// ExitError, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "gridpath finds routes across square grids with DFS, BFS and A*",
		Long:          `gridpath runs depth-first, breadth-first and A* search over a square grid of cells with barriers, and shows every step of the search.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			if c.configPath != "" {
				c.Logger.Debug("config loaded", "path", c.configPath)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML configuration file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.algorithmsCommand())

	return root
}
