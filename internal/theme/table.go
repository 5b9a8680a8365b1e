// Package theme provides table helpers for human-readable output.
package theme

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

const tablePadding = 2

var tableHeaderStyle = lipgloss.NewStyle().Bold(true)

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', 0)
	if len(headers) > 0 {
		styled := make([]string, len(headers))
		for i, header := range headers {
			styled[i] = tableHeaderStyle.Render(header)
		}
		fmt.Fprintln(writer, strings.Join(styled, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}
