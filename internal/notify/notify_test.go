package notify

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/hardmode/internal/session"
)

type recorder struct {
	ended []session.Mode
	mu    sync.Mutex
}

func (r *recorder) Notify(m session.Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ended = append(r.ended, m)
}

func TestMultiNotifiesAll(t *testing.T) {
	a, b := &recorder{}, &recorder{}

	Multi{a, Nop{}, b}.Notify(session.Focus)

	assert.Equal(t, []session.Mode{session.Focus}, a.ended)
	assert.Equal(t, []session.Mode{session.Focus}, b.ended)
}

func TestAsyncDelivers(t *testing.T) {
	r := &recorder{}
	a := NewAsync(r)

	a.Notify(session.Focus)
	a.Notify(session.Break)
	a.Wait()

	assert.ElementsMatch(t, []session.Mode{session.Focus, session.Break}, r.ended)
}

func TestDesktopMessages(t *testing.T) {
	type sent struct {
		title, msg string
	}

	var got []sent

	d := NewDesktop(map[session.Mode]string{
		session.Break: "Back to it",
		session.Focus: "",
	}, nil)

	d.send = func(title, msg, _ string) error {
		got = append(got, sent{title, msg})
		return nil
	}

	d.Notify(session.Focus)
	d.Notify(session.Break)

	assert.Equal(t, []sent{
		{defaultTitle, "Time for a break."},
		{defaultTitle, "Back to it"},
	}, got)
}

func TestDesktopFailureIsSwallowed(t *testing.T) {
	d := NewDesktop(nil, nil)

	calls := 0
	d.send = func(string, string, string) error {
		calls++
		return errors.New("no notification daemon")
	}

	assert.NotPanics(t, func() {
		d.Notify(session.Focus)
	})
	assert.Equal(t, 1, calls)
}

func TestNewCommand(t *testing.T) {
	c, err := NewCommand(`notify-send "focus over" --urgency=low`, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"notify-send", "focus over", "--urgency=low"}, c.Args())

	_, err = NewCommand("   ", nil)
	assert.ErrorIs(t, err, errEmptyCommand)

	_, err = NewCommand(`echo "unterminated`, nil)
	assert.Error(t, err)
}

func TestCommandReceivesMode(t *testing.T) {
	c, err := NewCommand(`sh -c 'printf %s "$HARDMODE_MODE"'`, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	c.Stdout = &out

	c.Notify(session.Break)

	assert.Equal(t, "break", out.String())
}

func TestNewSoundValidatesFiles(t *testing.T) {
	dir := t.TempDir()

	wav := filepath.Join(dir, "bell.wav")
	require.NoError(t, os.WriteFile(wav, []byte("RIFF"), 0o600))

	txt := filepath.Join(dir, "bell.txt")
	require.NoError(t, os.WriteFile(txt, []byte("bell"), 0o600))

	s, err := NewSound(map[session.Mode]string{
		session.Focus: wav,
		session.Break: "",
	}, nil)
	require.NoError(t, err)
	assert.Len(t, s.paths, 1)

	_, err = NewSound(map[session.Mode]string{session.Focus: txt}, nil)
	assert.ErrorIs(t, err, errInvalidSoundFormat)

	_, err = NewSound(
		map[session.Mode]string{session.Focus: filepath.Join(dir, "gone.ogg")},
		nil,
	)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSoundWithoutPathIsSilent(t *testing.T) {
	s, err := NewSound(nil, nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		s.Notify(session.Focus)
	})
}
