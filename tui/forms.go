package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/hardmode/internal/session"
)

const defaultFocusScore = 3

// Task is an entry of the task picker.
type Task struct {
	ID   string
	Name string
}

// reviewAnswers collects the answers of the review form.
type reviewAnswers struct {
	reason session.Reason
	note   string
	score  int
	save   bool
}

func (a *reviewAnswers) review() session.Review {
	return session.Review{
		FocusScore: a.score,
		Reason:     a.reason,
		Note:       a.note,
	}
}

func newReviewForm(a *reviewAnswers) *huh.Form {
	a.score = defaultFocusScore
	a.save = true

	scores := make([]huh.Option[int], 0, session.MaxFocusScore)
	for i := session.MinFocusScore; i <= session.MaxFocusScore; i++ {
		scores = append(scores, huh.NewOption(scoreLabel(i), i))
	}

	reasons := []huh.Option[session.Reason]{huh.NewOption("none", session.Reason(""))}
	for _, r := range session.Reasons {
		reasons = append(reasons, huh.NewOption(string(r), r))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("How focused were you?").
				Options(scores...).
				Value(&a.score),
			huh.NewSelect[session.Reason]().
				Title("What shaped the session?").
				Options(reasons...).
				Value(&a.reason),
			huh.NewText().
				Title("Note").
				CharLimit(500).
				Value(&a.note),
			huh.NewConfirm().
				Title("Save this review?").
				Affirmative("Save").
				Negative("Skip").
				Value(&a.save),
		),
	).WithShowHelp(false)
}

func scoreLabel(score int) string {
	labels := map[int]string{
		1: "1 - scattered",
		2: "2 - distracted",
		3: "3 - steady",
		4: "4 - focused",
		5: "5 - deep focus",
	}

	return labels[score]
}

func newTaskPicker(tasks []Task, selected *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(tasks))

	for _, t := range tasks {
		opts = append(opts, huh.NewOption(t.Name, t.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which task are you working on?").
				Options(opts...).
				Value(selected),
		),
	).WithShowHelp(false)
}
