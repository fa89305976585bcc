package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Equal(t, "", firstNonEmptyString("", ""))
	assert.Equal(t, "", firstNonEmptyString())
}

func TestGet(t *testing.T) {
	a := Get()

	assert.Equal(t, "hardmode", a.Name)

	var names []string
	for _, c := range a.Commands {
		names = append(names, c.Name)
	}

	assert.ElementsMatch(t, []string{"edit-config", "status", "reset", "tasks"}, names)

	var flags []string
	for _, f := range a.Flags {
		flags = append(flags, f.Names()[0])
	}

	assert.Contains(t, flags, "task")
	assert.Contains(t, flags, "focus")
	assert.Contains(t, flags, "break")
	assert.Contains(t, flags, "storage")
}

func TestHelpTextMentionsEnvironment(t *testing.T) {
	text := helpText()

	for _, v := range []string{envNoColor, envHardmodeNoColor, "HARDMODE_API_URL", "HARDMODE_ENV"} {
		assert.Contains(t, text, v)
	}
}
