// Package remote talks to the hardmode REST backend that keeps the daily task
// list and the history of completed focus sessions
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strconv"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/hardmode/internal/apperr"
	"github.com/ayoisaiah/hardmode/internal/session"
)

const (
	// DateLayout is the day key used by the backend.
	DateLayout = "2006-01-02"

	defaultTimeout = 10 * time.Second
)

var (
	ErrInvalidURL = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "remote url must be an absolute http(s) url: %q",
	}

	ErrDayNotFound = &apperr.Error{
		Kind:    apperr.KindRemoteSync,
		Message: "no day planned on the backend for %s",
	}

	ErrTaskNotFound = &apperr.Error{
		Kind:    apperr.KindRemoteSync,
		Message: "task %s is not on the backend's list for %s",
	}

	errRequest = &apperr.Error{
		Kind:    apperr.KindRemoteSync,
		Message: "request to %s failed",
	}

	errStatus = &apperr.Error{
		Kind:    apperr.KindRemoteSync,
		Message: "unexpected response from backend",
	}
)

// StatusError describes a non-2xx response.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return e.Method + " " + e.URL + ": " + http.StatusText(e.Code) +
		" (" + strconv.Itoa(e.Code) + ")"
}

// Day is a planned work day.
type Day struct {
	Date          string `json:"date"`
	ID            int    `json:"id"`
	TargetPomos   int    `json:"target_pomos"`
	FinishedPomos int    `json:"finished_pomos"`
}

// DailyTask is a task planned for a day. Fields the client does not use are
// carried along untouched so that updates do not erase them.
type DailyTask struct {
	CreatedAt        time.Time  `json:"created_at"`
	PlannedAt        *time.Time `json:"planned_at"`
	PlanPriority     *int       `json:"plan_priority"`
	CompletedAt      *time.Time `json:"completed_at"`
	TaskName         string     `json:"task_name"`
	ReasonAdded      string     `json:"reason_added"`
	ID               int        `json:"id"`
	DayID            int        `json:"day_id"`
	PlannedPomodoros int        `json:"planned_pomodoros"`
	PomodorosSpent   int        `json:"pomodoros_spent"`
	Completed        bool       `json:"completed"`
	AddedMidDay      bool       `json:"added_mid_day"`
}

// Key returns the task identifier used by the timer.
func (t *DailyTask) Key() string {
	return strconv.Itoa(t.ID)
}

// Pomodoro is a history entry for a reviewed focus session.
type Pomodoro struct {
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	FocusScore    *int      `json:"focus_score"`
	Reason        string    `json:"reason"`
	Note          string    `json:"note"`
	Task          string    `json:"task"`
	DayID         int       `json:"day_id"`
	DurationSec   int       `json:"duration_sec"`
	PauseCount    int       `json:"pause_count"`
	Aborted       bool      `json:"aborted"`
	ContextSwitch bool      `json:"context_switch"`
}

// NewPomodoro builds the history entry for rec.
func NewPomodoro(dayID int, task string, rec *session.CompletionRecord) Pomodoro {
	p := Pomodoro{
		DayID:       dayID,
		StartTime:   rec.StartedAt(),
		EndTime:     rec.CompletedAt,
		DurationSec: rec.DurationSec,
		Aborted:     rec.Aborted,
		FocusScore:  rec.FocusScore,
		Task:        task,
		PauseCount:  rec.PauseCount,
	}

	if rec.Reason != nil {
		p.Reason = string(*rec.Reason)
	}

	if rec.Note != nil {
		p.Note = *rec.Note
	}

	return p
}

// Client is a backend client.
type Client struct {
	http    *http.Client
	base    *url.URL
	logger  *slog.Logger
	loc     *time.Location
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithLocation sets the time zone used to derive day keys.
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		c.loc = loc
	}
}

// New returns a client for the backend at rawURL.
func New(rawURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidURL.Fmt(rawURL)
	}

	c := &Client{
		base:    u,
		http:    http.DefaultClient,
		timeout: defaultTimeout,
		loc:     time.Local,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) endpoint(elem ...string) string {
	u := *c.base
	u.Path = path.Join(append([]string{u.Path}, elem...)...)

	return u.String()
}

// do sends a request and decodes a JSON response into out, if non-nil.
func (c *Client) do(
	ctx context.Context,
	method, endpoint string,
	body, out any,
) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var r io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errRequest.Fmt(endpoint).Wrap(err)
		}

		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, r)
	if err != nil {
		return errRequest.Fmt(endpoint).Wrap(err)
	}

	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errRequest.Fmt(endpoint).Wrap(err)
	}

	defer resp.Body.Close()

	c.logger.Debug(
		"backend request",
		slog.String("method", method),
		slog.String("url", endpoint),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errStatus.Wrap(&StatusError{
			Method: method,
			URL:    endpoint,
			Code:   resp.StatusCode,
		})
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errRequest.Fmt(endpoint).Wrap(err)
	}

	return nil
}

// Health checks that the backend is reachable.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, c.endpoint("health"), nil, nil)
}

// Day returns the day planned for date.
func (c *Client) Day(ctx context.Context, date time.Time) (Day, error) {
	key := date.In(c.loc).Format(DateLayout)

	var d Day

	err := c.do(ctx, http.MethodGet, c.endpoint("api", "days", key), nil, &d)
	if isNotFound(err) {
		return d, ErrDayNotFound.Fmt(key)
	}

	return d, err
}

func isNotFound(err error) bool {
	var se *StatusError

	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

func (c *Client) dayTasks(ctx context.Context, dayID int) ([]DailyTask, error) {
	var tasks []DailyTask

	err := c.do(
		ctx,
		http.MethodGet,
		c.endpoint("api", "days", strconv.Itoa(dayID), "tasks"),
		nil,
		&tasks,
	)

	return tasks, err
}

// Tasks lists the tasks planned for date. Open tasks come first; each group
// is ordered by name the way a person would sort it.
func (c *Client) Tasks(ctx context.Context, date time.Time) ([]DailyTask, error) {
	d, err := c.Day(ctx, date)
	if err != nil {
		return nil, err
	}

	tasks, err := c.dayTasks(ctx, d.ID)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(tasks, func(a, b DailyTask) int {
		if a.Completed != b.Completed {
			if a.Completed {
				return 1
			}

			return -1
		}

		switch {
		case natural.Less(a.TaskName, b.TaskName):
			return -1
		case natural.Less(b.TaskName, a.TaskName):
			return 1
		default:
			return 0
		}
	})

	return tasks, nil
}

// CompleteInterval credits the record's task with one more pomodoro and,
// when the record was reviewed, stores the review in the backend's history.
func (c *Client) CompleteInterval(
	ctx context.Context,
	rec session.CompletionRecord,
) error {
	d, err := c.Day(ctx, rec.CompletedAt)
	if err != nil {
		return err
	}

	tasks, err := c.dayTasks(ctx, d.ID)
	if err != nil {
		return err
	}

	i := slices.IndexFunc(tasks, func(t DailyTask) bool {
		return t.Key() == rec.TaskID
	})
	if i < 0 {
		return ErrTaskNotFound.Fmt(rec.TaskID, d.Date)
	}

	task := tasks[i]
	task.PomodorosSpent++

	err = c.do(
		ctx,
		http.MethodPut,
		c.endpoint("api", "daily-tasks", task.Key()),
		task,
		nil,
	)
	if err != nil {
		return err
	}

	if !rec.Reviewed() {
		return nil
	}

	return c.do(
		ctx,
		http.MethodPost,
		c.endpoint("api", "pomodoros"),
		NewPomodoro(d.ID, task.TaskName, &rec),
		nil,
	)
}

// Discard accepts completed sessions without sending them anywhere. It is
// used when no backend is configured.
type Discard struct{}

func (Discard) CompleteInterval(context.Context, session.CompletionRecord) error {
	return nil
}
