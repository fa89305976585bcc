// Package tui renders the session timer in the terminal and feeds it user
// input and clock ticks
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/hardmode/timer"
)

type (
	// tickMsg is sent once per clock unit while a run is active. tag identifies
	// the run it was scheduled for.
	tickMsg struct {
		tag int
	}

	// noticeMsg carries a failure reported outside the timeline.
	noticeMsg struct {
		err error
	}
)

// Options configures the model.
type Options struct {
	// Notices delivers background failures, such as remote sync errors.
	Notices <-chan error
	// Now is used for the "until" hint; defaults to time.Now.
	Now   func() time.Time
	Tasks []Task
	// TwentyFourHour selects the clock format of the "until" hint.
	TwentyFourHour bool
}

// Model is the bubbletea model of the timer.
type Model struct {
	timer    *timer.Timer
	opts     Options
	style    style
	help     help.Model
	progress progress.Model

	review  *huh.Form
	answers *reviewAnswers

	picker     *huh.Form
	pickedTask string

	tasks  map[string]string
	notice string
}

// New returns a model driving t.
func New(t *timer.Timer, opts Options) *Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	tasks := make(map[string]string, len(opts.Tasks))
	for _, task := range opts.Tasks {
		tasks[task.ID] = task.Name
	}

	return &Model{
		timer:    t,
		opts:     opts,
		style:    newStyle(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		tasks:    tasks,
	}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.listen()}

	if m.timer.AwaitingReview() {
		cmds = append(cmds, m.openReview())
	} else if m.timer.Running() {
		cmds = append(cmds, m.tick())
	}

	return tea.Batch(cmds...)
}

// tick schedules the next tick of the current run.
func (m *Model) tick() tea.Cmd {
	clock := m.timer.Clock()
	tag := clock.Tag()

	return tea.Tick(clock.Unit, func(time.Time) tea.Msg {
		return tickMsg{tag: tag}
	})
}

// listen waits for the next background notice.
func (m *Model) listen() tea.Cmd {
	if m.opts.Notices == nil {
		return nil
	}

	return func() tea.Msg {
		err, ok := <-m.opts.Notices
		if !ok {
			return nil
		}

		return noticeMsg{err: err}
	}
}

func (m *Model) openReview() tea.Cmd {
	m.answers = &reviewAnswers{}
	m.review = newReviewForm(m.answers)

	return m.review.Init()
}

func (m *Model) openPicker() tea.Cmd {
	m.pickedTask = m.timer.Task()
	m.picker = newTaskPicker(m.opts.Tasks, &m.pickedTask)

	return m.picker.Init()
}

func (m *Model) taskName(id string) string {
	if name, ok := m.tasks[id]; ok {
		return name
	}

	return id
}
