package app

import (
	"log/slog"
	"os"
	"os/exec"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/hardmode/internal/config"
	"github.com/ayoisaiah/hardmode/internal/osutil"
	"github.com/ayoisaiah/hardmode/internal/timeutil"
	"github.com/ayoisaiah/hardmode/report"
	"github.com/ayoisaiah/hardmode/store"
	"github.com/ayoisaiah/hardmode/timer"
	"github.com/ayoisaiah/hardmode/tui"
)

const (
	envNoColor         = "NO_COLOR"
	envHardmodeNoColor = "HARDMODE_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editConfigAction handles the edit-config command which opens the hardmode
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(),
	)

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// statusAction handles the status command and prints the stored session as
// it would be resumed now.
func statusAction(ctx *cli.Context) error {
	inst, err := newInstance(ctx, false)
	if err != nil {
		return err
	}
	defer inst.close()

	if err := inst.openStore(); err != nil {
		if store.IsLocked(err) {
			report.Locked(config.Stdout)
			return nil
		}

		return err
	}

	r, err := inst.state.Restore()
	if err != nil {
		return err
	}

	return report.Status(config.Stdout, &r, inst.cfg.Settings.TwentyFourHour)
}

// resetAction handles the reset command which discards the stored session.
func resetAction(ctx *cli.Context) error {
	inst, err := newInstance(ctx, false)
	if err != nil {
		return err
	}
	defer inst.close()

	if err := inst.openStore(); err != nil {
		return err
	}

	if err := inst.state.Clear(); err != nil {
		return err
	}

	inst.logger.Info("session state cleared from the command line")

	report.Cleared()

	return nil
}

// tasksAction handles the tasks command and prints today's tasks from the
// backend.
func tasksAction(ctx *cli.Context) error {
	inst, err := newInstance(ctx, false)
	if err != nil {
		return err
	}
	defer inst.close()

	if inst.client == nil {
		return errNoRemote
	}

	spinner, _ := pterm.DefaultSpinner.Start("Fetching today's tasks...")

	if err := inst.client.Health(ctx.Context); err != nil {
		_ = spinner.Stop()
		return err
	}

	tasks, err := inst.client.Tasks(ctx.Context, timeutil.RoundToStart(time.Now()))

	_ = spinner.Stop()

	if err != nil {
		return err
	}

	return report.Tasks(config.Stdout, tasks, inst.cfg.CLI.TaskID)
}

// defaultAction restores the previous session, if any, and runs the timer.
func defaultAction(ctx *cli.Context) error {
	inst, err := newInstance(ctx, true)
	if err != nil {
		return err
	}
	defer inst.close()

	if err := inst.openStore(); err != nil {
		return err
	}

	notifier, err := inst.notifier()
	if err != nil {
		return err
	}

	emitter := timer.NewEmitter(
		inst.collaborator(),
		timer.WithEmitTimeout(inst.emitTimeout()),
		timer.WithEmitLogger(inst.logger.With(slog.String("component", "sync"))),
	)

	t := timer.New(
		inst.cfg.Durations(),
		timer.WithStore(inst.state),
		timer.WithNotifier(notifier),
		timer.WithSink(emitter),
		timer.WithLogger(inst.logger.With(slog.String("component", "timer"))),
	)

	r, err := inst.state.Restore()
	if err != nil {
		inst.logger.Warn("previous session discarded", slog.Any("error", err))
		report.Warning("previous session could not be restored: %v", err)
	}

	if r.Stale {
		report.Stale()
	}

	if r.Expired {
		report.Expired(r.State.Mode)
	}

	t.Resume(r.State, r.Expired)

	if task := inst.cfg.CLI.TaskID; task != "" && t.BindTask(task) {
		report.Aborted(task)
	}

	m := tui.New(t, tui.Options{
		Notices:        emitter.Notices(),
		Tasks:          inst.pickerTasks(ctx.Context),
		TwentyFourHour: inst.cfg.Settings.TwentyFourHour,
	})

	_, err = tea.NewProgram(m).Run()

	emitter.Wait()
	notifier.Wait()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if HARDMODE_NO_COLOR is set
	if _, exists := os.LookupEnv(envHardmodeNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting hardmode")

	return nil
}
