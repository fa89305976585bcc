// Package report prints the outcome of hardmode's commands to the terminal
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/hardmode/internal/osutil"
	"github.com/ayoisaiah/hardmode/internal/remote"
	"github.com/ayoisaiah/hardmode/internal/session"
	"github.com/ayoisaiah/hardmode/internal/timeutil"
	"github.com/ayoisaiah/hardmode/internal/ui"
	"github.com/ayoisaiah/hardmode/store"
)

const (
	noSessionMsg = "No session in progress"
	noTasksMsg   = "No tasks planned for today"
	lockedMsg    = "hardmode is running in another terminal"
)

func Error(err error) {
	pterm.Error.Println(err)
}

func Warning(format string, a ...any) {
	pterm.Warning.Printfln(format, a...)
}

// Quit prints err and exits with a failure code.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}

// Cleared confirms that the stored session was removed.
func Cleared() {
	pterm.Success.Println("session state cleared")
}

// Stale tells the user that an old snapshot was thrown away.
func Stale() {
	pterm.Info.Println(
		"previous session was too old to resume, starting afresh",
	)
}

// Expired tells the user that an interval ended while hardmode was closed.
func Expired(m session.Mode) {
	pterm.Info.Printfln("your %s session ended while hardmode was closed", m)
}

// Aborted tells the user that changing the task restarted the focus session.
func Aborted(task string) {
	pterm.Warning.Printfln(
		"switched to task %s: the running focus session was abandoned",
		task,
	)
}

// Locked tells the user that another instance holds the session.
func Locked(w io.Writer) {
	fmt.Fprintln(w, pterm.Info.Sprint(lockedMsg))
}

// Status prints a restored session.
func Status(w io.Writer, r *store.Restored, twentyFourHour bool) error {
	if !r.Found {
		_, err := fmt.Fprintln(w, pterm.Info.Sprint(noSessionMsg))
		return err
	}

	st := r.State

	task := st.TaskID
	if task == "" {
		task = "-"
	}

	// a focus interval that ran out while closed is reviewed on next start
	awaiting := st.AwaitingReview || (r.Expired && st.Mode == session.Focus)

	status := ui.Red("paused")
	if st.Running {
		status = ui.Green("running")
	}

	rows := [][]string{
		{"Mode", ui.Mode(st.Mode)},
		{"Task", task},
		{"Status", status},
		{"Time left", timeutil.Countdown(st.TimeLeft)},
		{"Pauses", strconv.Itoa(st.PauseCount)},
		{"Awaiting review", ui.YesNo(awaiting)},
		{"Last saved", timeutil.Clock(st.LastPersistedAt, twentyFourHour)},
	}

	if st.Running {
		rows = append(rows, []string{
			"Ends at",
			timeutil.Clock(
				timeutil.EndTime(time.Now(), st.TimeLeft),
				twentyFourHour,
			),
		})
	}

	return ui.PrintPairs(rows, w)
}

// Tasks prints the day's task list. The bound task is highlighted.
func Tasks(w io.Writer, tasks []remote.DailyTask, bound string) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, pterm.Info.Sprint(noTasksMsg))
		return err
	}

	data := [][]string{{"#", "ID", "TASK", "POMODOROS", "STATUS"}}

	for i := range tasks {
		t := &tasks[i]

		id := t.Key()
		if id == bound {
			id = ui.Yellow(id + "*")
		}

		statusText := ui.Cyan("open")
		if t.Completed {
			statusText = ui.Green("done")
		}

		data = append(data, []string{
			strconv.Itoa(i + 1),
			id,
			t.TaskName,
			fmt.Sprintf("%d/%d", t.PomodorosSpent, t.PlannedPomodoros),
			statusText,
		})
	}

	return ui.PrintTable(data, w)
}
