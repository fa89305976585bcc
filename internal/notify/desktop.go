package notify

import (
	"io"
	"log/slog"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/hardmode/internal/session"
)

const defaultTitle = "hardmode"

// Desktop shows a system notification.
type Desktop struct {
	Messages map[session.Mode]string
	send     func(title, message, icon string) error
	logger   *slog.Logger
	Title    string
	Icon     string
}

// NewDesktop returns a desktop notifier using msgs, falling back to
// DefaultMessages for modes without a message.
func NewDesktop(msgs map[session.Mode]string, logger *slog.Logger) *Desktop {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := make(map[session.Mode]string, len(DefaultMessages))

	for k, v := range DefaultMessages {
		m[k] = v
	}

	for k, v := range msgs {
		if v != "" {
			m[k] = v
		}
	}

	return &Desktop{
		Title:    defaultTitle,
		Messages: m,
		send:     beeep.Notify,
		logger:   logger,
	}
}

func (d *Desktop) Notify(ended session.Mode) {
	msg := d.Messages[ended]

	err := d.send(d.Title, msg, d.Icon)
	if err != nil {
		d.logger.Warn(
			"unable to display notification",
			slog.String("mode", ended.String()),
			slog.Any("error", err),
		)
	}
}
