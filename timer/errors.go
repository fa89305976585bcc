package timer

import "github.com/ayoisaiah/hardmode/internal/apperr"

var (
	ErrNoTaskBound = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "select a task before starting a focus session",
	}

	ErrAwaitingReview = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "review or skip the completed focus session first",
	}

	ErrNoReviewPending = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "there is no completed focus session to review",
	}

	ErrInvalidFocusScore = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "focus score must be between 1 and 5, got %d",
	}

	ErrUnknownReason = &apperr.Error{
		Kind:    apperr.KindValidation,
		Message: "unknown review reason: %q",
	}

	ErrRemoteSync = &apperr.Error{
		Kind:    apperr.KindRemoteSync,
		Message: "unable to sync completed session",
	}
)
