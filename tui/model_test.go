package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/hardmode/internal/session"
	"github.com/ayoisaiah/hardmode/timer"
)

type sink struct {
	records []session.CompletionRecord
}

func (s *sink) Emit(rec session.CompletionRecord) {
	s.records = append(s.records, rec)
}

func newTestModel(t *testing.T, opts Options) (*Model, *timer.Timer, *sink) {
	t.Helper()

	s := &sink{}
	tm := timer.New(
		session.Durations{Focus: 2 * time.Second, Break: time.Second},
		timer.WithSink(s),
	)

	return New(tm, opts), tm, s
}

func press(m *Model, k string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return cmd
}

func TestStartWithoutTaskShowsNotice(t *testing.T) {
	m, tm, _ := newTestModel(t, Options{})

	cmd := press(m, "p")

	assert.Nil(t, cmd)
	assert.False(t, tm.Running())
	assert.Equal(t, timer.ErrNoTaskBound.Error(), m.notice)
	assert.Contains(t, m.View(), "No task selected")
}

func TestStaleTickIsDropped(t *testing.T) {
	m, tm, _ := newTestModel(t, Options{})
	tm.BindTask("1")

	require.NotNil(t, press(m, "p"))
	stale := tm.Clock().Tag()

	press(m, "p")
	require.NotNil(t, press(m, "p"))

	_, cmd := m.Update(tickMsg{tag: stale})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, tm.Remaining())

	_, cmd = m.Update(tickMsg{tag: tm.Clock().Tag()})
	assert.NotNil(t, cmd, "a running clock schedules its next tick")
	assert.Equal(t, 1, tm.Remaining())
}

func TestExpiryOpensReview(t *testing.T) {
	m, tm, s := newTestModel(t, Options{})
	tm.BindTask("1")

	press(m, "p")
	m.Update(tickMsg{tag: tm.Clock().Tag()})
	m.Update(tickMsg{tag: tm.Clock().Tag()})

	require.NotNil(t, m.review)
	assert.True(t, tm.AwaitingReview())
	assert.Contains(t, m.View(), "Your focus session is complete")

	m.answers.reason = session.ReasonDeepFlow
	assert.Nil(t, m.resolveReview())

	require.Len(t, s.records, 1)
	require.NotNil(t, s.records[0].FocusScore)
	assert.Equal(t, defaultFocusScore, *s.records[0].FocusScore)
	assert.Equal(t, session.ReasonDeepFlow, *s.records[0].Reason)
	assert.Nil(t, m.review)
	assert.False(t, tm.AwaitingReview())
}

func TestSkipReview(t *testing.T) {
	m, tm, s := newTestModel(t, Options{})
	tm.BindTask("1")

	press(m, "p")
	m.Update(tickMsg{tag: tm.Clock().Tag()})
	m.Update(tickMsg{tag: tm.Clock().Tag()})
	require.NotNil(t, m.review)

	m.answers.save = false
	m.answers.score = 5
	m.resolveReview()

	require.Len(t, s.records, 1)
	assert.False(t, s.records[0].Reviewed())
}

func TestInvalidReviewReopensForm(t *testing.T) {
	m, tm, s := newTestModel(t, Options{})
	tm.BindTask("1")

	press(m, "p")
	m.Update(tickMsg{tag: tm.Clock().Tag()})
	m.Update(tickMsg{tag: tm.Clock().Tag()})

	m.answers.reason = "boredom"
	m.resolveReview()

	assert.NotNil(t, m.review)
	assert.Empty(t, s.records)
	assert.NotEmpty(t, m.notice)
}

func TestResumedReviewOpensOnInit(t *testing.T) {
	m, tm, _ := newTestModel(t, Options{})

	tm.Resume(session.State{
		Mode:           session.Break,
		TimeLeft:       1,
		TaskID:         "1",
		AwaitingReview: true,
	}, false)

	m.Init()

	assert.NotNil(t, m.review)
}

func TestNoticeIsShown(t *testing.T) {
	notices := make(chan error, 1)

	m, _, _ := newTestModel(t, Options{Notices: notices})

	_, cmd := m.Update(noticeMsg{err: errors.New("unable to sync completed session")})

	assert.NotNil(t, cmd, "keeps listening for notices")
	assert.Contains(t, m.View(), "unable to sync completed session")
}

func TestResetAndSwitchKeys(t *testing.T) {
	m, tm, _ := newTestModel(t, Options{
		Tasks: []Task{{ID: "1", Name: "write report"}},
	})
	tm.BindTask("1")

	press(m, "p")
	m.Update(tickMsg{tag: tm.Clock().Tag()})

	assert.Contains(t, m.View(), "write report")

	press(m, "r")
	assert.Equal(t, 2, tm.Remaining())
	assert.False(t, tm.Running())

	press(m, "s")
	assert.Equal(t, session.Break, tm.Mode())
	assert.Contains(t, m.View(), "00:01")
}
