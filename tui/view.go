package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/hardmode/internal/session"
	"github.com/ayoisaiah/hardmode/internal/timeutil"
)

func (m *Model) View() string {
	if m.review != nil {
		return m.style.base.Render(m.reviewView())
	}

	view := m.timerView()

	if m.picker != nil {
		view += "\n\n" + m.picker.View()
	}

	return m.style.base.Render(view)
}

func (m *Model) reviewView() string {
	var s strings.Builder

	s.WriteString(m.style.main.Render("Your focus session is complete"))

	if task := m.timer.State().TaskID; task != "" {
		s.WriteString(" " + m.style.hint.Render(m.taskName(task)))
	}

	s.WriteString("\n\n" + m.review.View())
	s.WriteString(m.noticeView())

	return s.String()
}

func (m *Model) timerView() string {
	var s strings.Builder

	mode := m.timer.Mode()
	remaining := m.timer.Remaining()

	s.WriteString(m.style.modes[mode].Render(modeTitle(mode)))

	if m.timer.Running() {
		end := timeutil.EndTime(m.opts.Now(), remaining)
		s.WriteString(m.style.hint.Render(
			"until " + timeutil.Clock(end, m.opts.TwentyFourHour),
		))
	} else {
		s.WriteString(m.style.secondary.Render("[Paused]"))
	}

	if mode == session.Focus {
		if pauses := m.timer.PauseCount(); pauses > 0 {
			s.WriteString(m.style.hint.Render(fmt.Sprintf(" (%d paused)", pauses)))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(m.taskView())
	s.WriteString(m.style.main.Render(timeutil.Countdown(remaining)))
	s.WriteString("\n\n")

	total := m.timer.Durations().Seconds(mode)
	if total > 0 {
		s.WriteString(m.progress.ViewAs(1 - float64(remaining)/float64(total)))
	}

	s.WriteString(m.noticeView())
	s.WriteString("\n\n" + m.helpView())

	return s.String()
}

func (m *Model) taskView() string {
	if m.timer.Mode() != session.Focus {
		return ""
	}

	task := m.timer.Task()
	if task == "" {
		return m.style.warning.Render("No task selected") + "\n\n"
	}

	return m.style.secondary.Render(m.taskName(task)) + "\n\n"
}

func (m *Model) noticeView() string {
	if m.notice == "" {
		return ""
	}

	return "\n\n" + m.style.warning.Render(m.notice)
}

func (m *Model) helpView() string {
	bindings := []key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.reset,
		defaultKeymap.switchMode,
	}

	if len(m.opts.Tasks) > 0 {
		bindings = append(bindings, defaultKeymap.pickTask)
	}

	bindings = append(bindings, defaultKeymap.quit)

	return m.help.ShortHelpView(bindings)
}

func modeTitle(m session.Mode) string {
	if m == session.Break {
		return "Break"
	}

	return "Focus"
}
