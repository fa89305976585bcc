// Package ui holds the pterm helpers used by the non-interactive commands
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes data as a boxed table. The first row is the header.
func PrintTable(data [][]string, writer io.Writer) error {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(writer, str)

	return err
}

// PrintPairs writes key/value rows as a boxed table without a header.
func PrintPairs(rows [][]string, writer io.Writer) error {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithData(rows).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(writer, str)

	return err
}
