package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/hardmode/internal/session"
)

const defaultCommandTimeout = 30 * time.Second

var errEmptyCommand = errors.New("session command is empty")

// Command runs a user supplied command whenever an interval ends. The ended
// mode is exported to the command as HARDMODE_MODE.
type Command struct {
	logger  *slog.Logger
	Stdout  io.Writer
	Stderr  io.Writer
	argv    []string
	Timeout time.Duration
}

// NewCommand parses cmdline with shell quoting rules.
func NewCommand(cmdline string, logger *slog.Logger) (*Command, error) {
	argv, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, err
	}

	if len(argv) == 0 {
		return nil, errEmptyCommand
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Command{
		argv:    argv,
		Timeout: defaultCommandTimeout,
		logger:  logger,
	}, nil
}

// Args returns the parsed command line.
func (c *Command) Args() []string {
	return append([]string(nil), c.argv...)
}

func (c *Command) Notify(ended session.Mode) {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	//nolint:gosec // the command comes from the user's own configuration
	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...)
	cmd.Env = append(os.Environ(), "HARDMODE_MODE="+ended.String())
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Run(); err != nil {
		c.logger.Warn(
			"session command failed",
			slog.String("cmd", c.argv[0]),
			slog.String("mode", ended.String()),
			slog.Any("error", err),
		)

		return
	}

	c.logger.Debug("session command ran", slog.String("cmd", c.argv[0]))
}
