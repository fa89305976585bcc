package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/hardmode/internal/config"
	"github.com/ayoisaiah/hardmode/internal/logging"
	"github.com/ayoisaiah/hardmode/internal/notify"
	"github.com/ayoisaiah/hardmode/internal/pathutil"
	"github.com/ayoisaiah/hardmode/internal/remote"
	"github.com/ayoisaiah/hardmode/internal/timeutil"
	"github.com/ayoisaiah/hardmode/store"
	"github.com/ayoisaiah/hardmode/timer"
	"github.com/ayoisaiah/hardmode/tui"
)

// CompleteInterval makes up to four backend requests.
const requestsPerCompletion = 4

var errNoRemote = errors.New(
	"no task backend configured: set remote.url, HARDMODE_API_URL or --api-url",
)

// instance holds the components of one hardmode process.
type instance struct {
	cfg     *config.Config
	logger  *slog.Logger
	repo    store.Repository
	state   *store.StateStore
	client  *remote.Client
	closers []io.Closer
}

// loadConfig reads the settings. The first run prompt is only shown by the
// timer itself; commands fall back to the defaults.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	opts := []config.Option{}

	if prompt {
		opts = append(opts, config.WithPromptConfig(pathutil.ConfigFilePath()))
	}

	opts = append(
		opts,
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithEnvConfig(),
		config.WithCLIConfig(ctx),
	)

	return config.New(opts...)
}

func newInstance(ctx *cli.Context, prompt bool) (*instance, error) {
	cfg, err := loadConfig(ctx, prompt)
	if err != nil {
		return nil, err
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)

	logger, logCloser := logging.NewFile(pathutil.LogFilePath(), level)

	slog.SetDefault(logger)

	inst := &instance{
		cfg:     cfg,
		logger:  logger,
		closers: []io.Closer{logCloser},
	}

	if cfg.Remote.URL != "" {
		inst.client, err = remote.New(
			cfg.Remote.URL,
			remote.WithTimeout(cfg.Remote.Timeout),
			remote.WithLogger(logger.With(slog.String("component", "remote"))),
		)
		if err != nil {
			inst.close()
			return nil, err
		}
	}

	return inst, nil
}

// openStore opens the configured slot and the state store on top of it.
func (inst *instance) openStore() error {
	var (
		repo store.Repository
		err  error
	)

	switch inst.cfg.Storage.Backend {
	case config.BackendSQLite:
		repo, err = store.NewSQLite(pathutil.SQLiteFilePath())
	default:
		repo, err = store.NewBolt(pathutil.BoltFilePath())
	}

	if err != nil {
		return err
	}

	inst.repo = repo
	inst.closers = append([]io.Closer{repo}, inst.closers...)

	inst.state = store.NewStateStore(
		repo,
		inst.cfg.Durations(),
		store.WithLogger(inst.logger.With(slog.String("component", "store"))),
	)

	return nil
}

// notifier assembles the channels that announce the end of an interval.
func (inst *instance) notifier() (*notify.Async, error) {
	logger := inst.logger.With(slog.String("component", "notify"))

	var ns notify.Multi

	if inst.cfg.Notifications.Enabled {
		ns = append(ns, notify.NewDesktop(inst.cfg.Messages(), logger))
	}

	sound, err := notify.NewSound(inst.cfg.Sounds(), logger)
	if err != nil {
		return nil, err
	}

	ns = append(ns, sound)

	if inst.cfg.Settings.Cmd != "" {
		cmd, err := notify.NewCommand(inst.cfg.Settings.Cmd, logger)
		if err != nil {
			return nil, err
		}

		ns = append(ns, cmd)
	}

	return notify.NewAsync(ns), nil
}

// collaborator returns where completed sessions are sent.
func (inst *instance) collaborator() timer.Collaborator {
	if inst.client == nil {
		return remote.Discard{}
	}

	return inst.client
}

// pickerTasks loads the open tasks of the day for the task picker. A failing
// backend leaves the picker empty.
func (inst *instance) pickerTasks(ctx context.Context) []tui.Task {
	if inst.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, inst.cfg.Remote.Timeout)
	defer cancel()

	tasks, err := inst.client.Tasks(ctx, timeutil.RoundToStart(time.Now()))
	if err != nil {
		inst.logger.Warn("task list not loaded", slog.Any("error", err))
		return nil
	}

	picks := make([]tui.Task, 0, len(tasks))

	for i := range tasks {
		if tasks[i].Completed {
			continue
		}

		picks = append(picks, tui.Task{
			ID:   tasks[i].Key(),
			Name: tasks[i].TaskName,
		})
	}

	return picks
}

func (inst *instance) emitTimeout() time.Duration {
	return requestsPerCompletion * inst.cfg.Remote.Timeout
}

func (inst *instance) close() {
	for _, c := range inst.closers {
		if err := c.Close(); err != nil {
			inst.logger.Error("close failed", slog.Any("error", err))
		}
	}
}
