package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const noticeTaskChanged = "Focus session abandoned: the task changed"

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.handleTick(msg)

	case noticeMsg:
		m.notice = msg.err.Error()

		return m, m.listen()

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil
	}

	if m.review != nil {
		return m.updateReview(msg)
	}

	if m.picker != nil {
		return m.updatePicker(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if !m.timer.TickFor(msg.tag) {
		return nil
	}

	if m.timer.AwaitingReview() && m.review == nil {
		m.picker = nil

		return m.openReview()
	}

	if m.timer.Running() {
		return m.tick()
	}

	return nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.togglePlay):
		wasRunning := m.timer.Running()

		err = m.timer.Toggle()
		if err == nil && !wasRunning && m.timer.Running() {
			m.notice = ""
			return m, m.tick()
		}

	case key.Matches(msg, defaultKeymap.reset):
		err = m.timer.Reset()

	case key.Matches(msg, defaultKeymap.switchMode):
		err = m.timer.Switch()

	case key.Matches(msg, defaultKeymap.pickTask):
		if len(m.opts.Tasks) > 0 {
			return m, m.openPicker()
		}
	}

	if err != nil {
		m.notice = err.Error()
	}

	return m, nil
}

func (m *Model) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.review.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.review = f
	}

	switch m.review.State {
	case huh.StateCompleted:
		return m, m.resolveReview()
	case huh.StateAborted:
		// the review stays pending and is asked for again on the next start
		return m, tea.Quit
	case huh.StateNormal:
	}

	return m, cmd
}

// resolveReview hands the answers of the completed review form to the timer.
func (m *Model) resolveReview() tea.Cmd {
	var err error

	if m.answers.save {
		_, err = m.timer.Save(m.answers.review())
	} else {
		_, err = m.timer.Skip()
	}

	if err != nil {
		m.notice = err.Error()
		return m.openReview()
	}

	m.review, m.answers = nil, nil
	m.notice = ""

	return nil
}

func (m *Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.picker.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.picker = f
	}

	switch m.picker.State {
	case huh.StateCompleted:
		m.picker = nil

		if m.timer.BindTask(m.pickedTask) {
			m.notice = noticeTaskChanged
		}

		return m, nil
	case huh.StateAborted:
		m.picker = nil

		return m, nil
	case huh.StateNormal:
	}

	return m, cmd
}
