// Package testutil holds helpers shared by hardmode's tests
package testutil

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/hardmode/internal/osutil"
)

type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of an operation matches
// the expected output.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: normalise CRLF line endings before comparing
		t.Skip("skipping golden file test in Windows")
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	snap, golden := tc.Output()

	if snap != nil {
		g.Assert(t, golden, snap)
		return
	}

	f := filepath.Join("testdata", golden+".golden")
	if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
		t.Fatalf("expected no output, but golden file exists: %s", f)
	}
}

func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}

// CLIContext builds a cli.Context with the given string and boolean flags
// set.
func CLIContext(
	t *testing.T,
	strs map[string]string,
	bools map[string]bool,
) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet(t.Name(), flag.ContinueOnError)

	for k, v := range strs {
		set.String(k, "", "")

		if err := set.Set(k, v); err != nil {
			t.Fatal(err)
		}
	}

	for k, v := range bools {
		set.Bool(k, false, "")

		if err := set.Set(k, fmt.Sprint(v)); err != nil {
			t.Fatal(err)
		}
	}

	return cli.NewContext(&cli.App{}, set, nil)
}
