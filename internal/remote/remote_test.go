package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/hardmode/internal/apperr"
	"github.com/ayoisaiah/hardmode/internal/session"
)

// backend is a minimal in-memory stand-in for the REST API.
type backend struct {
	days      map[string]Day
	tasks     map[int][]DailyTask
	updated   []DailyTask
	pomodoros []Pomodoro
	mu        sync.Mutex
}

func (b *backend) handler(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /api/days/{date}", func(w http.ResponseWriter, r *http.Request) {
		d, ok := b.days[r.PathValue("date")]
		if !ok {
			http.Error(w, "Day not found", http.StatusNotFound)
			return
		}

		_ = json.NewEncoder(w).Encode(d)
	})

	mux.HandleFunc("GET /api/days/{id}/tasks", func(w http.ResponseWriter, r *http.Request) {
		for _, d := range b.days {
			if strconv.Itoa(d.ID) == r.PathValue("id") {
				_ = json.NewEncoder(w).Encode(b.tasks[d.ID])
				return
			}
		}

		_ = json.NewEncoder(w).Encode([]DailyTask{})
	})

	mux.HandleFunc("PUT /api/daily-tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		var task DailyTask
		require.NoError(t, json.NewDecoder(r.Body).Decode(&task))

		b.mu.Lock()
		b.updated = append(b.updated, task)
		b.mu.Unlock()

		_ = json.NewEncoder(w).Encode(task)
	})

	mux.HandleFunc("POST /api/pomodoros", func(w http.ResponseWriter, r *http.Request) {
		var p Pomodoro
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))

		b.mu.Lock()
		b.pomodoros = append(b.pomodoros, p)
		b.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)
	})

	return mux
}

var completedAt = time.Date(2024, 5, 6, 10, 25, 0, 0, time.UTC)

func newTestClient(t *testing.T) (*Client, *backend) {
	t.Helper()

	b := &backend{
		days: map[string]Day{
			"2024-05-06": {ID: 3, Date: "2024-05-06", TargetPomos: 8},
		},
		tasks: map[int][]DailyTask{
			3: {
				{ID: 11, DayID: 3, TaskName: "write report 10", PomodorosSpent: 1},
				{ID: 12, DayID: 3, TaskName: "write report 9", PlannedPomodoros: 2},
				{ID: 13, DayID: 3, TaskName: "answer email", Completed: true},
			},
		},
	}

	srv := httptest.NewServer(b.handler(t))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, WithLocation(time.UTC), WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	return c, b
}

func TestNewRejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "ftp://example.com", "http://"} {
		_, err := New(raw)
		assert.ErrorIs(t, err, ErrInvalidURL, raw)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestHealth(t *testing.T) {
	c, _ := newTestClient(t)

	assert.NoError(t, c.Health(context.Background()))
}

func TestTasksAreSorted(t *testing.T) {
	c, _ := newTestClient(t)

	tasks, err := c.Tasks(context.Background(), completedAt)
	require.NoError(t, err)

	names := make([]string, 0, len(tasks))
	for _, task := range tasks {
		names = append(names, task.TaskName)
	}

	assert.Equal(t, []string{"write report 9", "write report 10", "answer email"}, names)
}

func TestTasksWithoutPlannedDay(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Tasks(context.Background(), completedAt.AddDate(0, 0, 1))
	require.ErrorIs(t, err, ErrDayNotFound)
	assert.Equal(t, apperr.KindRemoteSync, apperr.KindOf(err))
}

func TestCompleteReviewedInterval(t *testing.T) {
	c, b := newTestClient(t)

	score := 4
	reason := session.ReasonMusicHelped
	note := "lofi"

	rec := session.CompletionRecord{
		ID:          "01HXYZ",
		TaskID:      "11",
		CompletedAt: completedAt,
		DurationSec: 1500,
		PauseCount:  2,
		FocusScore:  &score,
		Reason:      &reason,
		Note:        &note,
	}

	require.NoError(t, c.CompleteInterval(context.Background(), rec))

	require.Len(t, b.updated, 1)
	assert.Equal(t, 11, b.updated[0].ID)
	assert.Equal(t, 2, b.updated[0].PomodorosSpent)
	assert.Equal(t, "write report 10", b.updated[0].TaskName)

	want := Pomodoro{
		DayID:       3,
		StartTime:   completedAt.Add(-25 * time.Minute),
		EndTime:     completedAt,
		DurationSec: 1500,
		FocusScore:  &score,
		Reason:      "music helped",
		Note:        "lofi",
		Task:        "write report 10",
		PauseCount:  2,
	}

	require.Len(t, b.pomodoros, 1)

	if diff := cmp.Diff(want, b.pomodoros[0]); diff != "" {
		t.Fatalf("pomodoro mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteSkippedInterval(t *testing.T) {
	c, b := newTestClient(t)

	rec := session.CompletionRecord{
		TaskID:      "12",
		CompletedAt: completedAt,
		DurationSec: 1500,
	}

	require.NoError(t, c.CompleteInterval(context.Background(), rec))

	require.Len(t, b.updated, 1)
	assert.Equal(t, 1, b.updated[0].PomodorosSpent)
	assert.Equal(t, 2, b.updated[0].PlannedPomodoros)
	assert.Empty(t, b.pomodoros)
}

func TestCompleteUnknownTask(t *testing.T) {
	c, b := newTestClient(t)

	rec := session.CompletionRecord{TaskID: "99", CompletedAt: completedAt}

	err := c.CompleteInterval(context.Background(), rec)
	require.ErrorIs(t, err, ErrTaskNotFound)
	assert.Empty(t, b.updated)
}

func TestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	err = c.Health(context.Background())

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, apperr.KindRemoteSync, apperr.KindOf(err))
}

func TestRequestTimeout(t *testing.T) {
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c, err := New(srv.URL, WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	err = c.Health(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard{}.CompleteInterval(context.Background(), session.CompletionRecord{}))
}
