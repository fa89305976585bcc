package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTemplate = &Error{
	Kind:    KindValidation,
	Message: "focus score must be between 1 and 5, got %d",
}

func TestFmtMatchesSentinel(t *testing.T) {
	err := errTemplate.Fmt(7)

	assert.Equal(t, "focus score must be between 1 and 5, got 7", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	sentinel := &Error{Kind: KindPersistence, Message: "unable to persist"}

	err := fmt.Errorf("tick: %w", sentinel.Wrap(cause))

	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindPersistence, KindOf(err))
	assert.Equal(t, "tick: unable to persist: disk full", err.Error())
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, "remote sync", KindRemoteSync.String())
}
