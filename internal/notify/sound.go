package notify

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/ayoisaiah/hardmode/internal/session"
)

var errInvalidSoundFormat = errors.New(
	"sound file must be in mp3, ogg, flac, or wav format",
)

// the speaker can only be initialised once per process
var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

// Sound plays an alert sound.
type Sound struct {
	logger *slog.Logger
	paths  map[session.Mode]string
}

// NewSound returns a notifier playing paths[mode] when mode ends. Modes
// without a path are silent.
func NewSound(paths map[session.Mode]string, logger *slog.Logger) (*Sound, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Sound{
		paths:  make(map[session.Mode]string),
		logger: logger,
	}

	for mode, path := range paths {
		if path == "" {
			continue
		}

		if err := checkSoundFile(path); err != nil {
			return nil, err
		}

		s.paths[mode] = path
	}

	return s, nil
}

func checkSoundFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg", ".mp3", ".flac", ".wav":
	default:
		return errInvalidSoundFormat
	}

	_, err := os.Stat(path)

	return err
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		return vorbis.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".wav":
		return wav.Decode(f)
	}

	_ = f.Close()

	return nil, beep.Format{}, errInvalidSoundFormat
}

func (s *Sound) Notify(ended session.Mode) {
	path, ok := s.paths[ended]
	if !ok {
		return
	}

	if err := s.play(path); err != nil {
		s.logger.Warn(
			"unable to play sound",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}
}

// play blocks until the sound has finished.
func (s *Sound) play(path string) error {
	stream, format, err := decode(path)
	if err != nil {
		return err
	}

	defer stream.Close()

	speakerOnce.Do(func() {
		speakerRate = format.SampleRate

		bufferSize := 10

		speakerErr = speaker.Init(
			speakerRate,
			speakerRate.N(time.Second/time.Duration(bufferSize)),
		)
	})

	if speakerErr != nil {
		return speakerErr
	}

	var streamer beep.Streamer = stream
	if format.SampleRate != speakerRate {
		streamer = beep.Resample(4, format.SampleRate, speakerRate, stream)
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))

	<-done

	return nil
}
