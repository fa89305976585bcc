// Package osutil holds operating system specific values
package osutil

import "runtime"

const Windows = "windows"

type exitCode int

const (
	ExitOK    exitCode = 0
	ExitError exitCode = 1
)

// DefaultEditor returns the editor used when neither VISUAL nor EDITOR is
// set.
func DefaultEditor() string {
	if runtime.GOOS == Windows {
		return "C:\\Windows\\system32\\notepad.exe"
	}

	return "nano"
}
