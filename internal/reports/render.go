package reports

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// RenderCSV renders a table as CSV with a header row.
func RenderCSV(t Table) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(t.Columns); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderMarkdown renders a table as a titled Markdown table.
func RenderMarkdown(t Table) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## %s\n\n", t.Title))

	sb.WriteString("| " + strings.Join(t.Columns, " | ") + " |\n")
	seps := make([]string, len(t.Columns))
	for i := range seps {
		seps[i] = "---"
	}
	sb.WriteString("| " + strings.Join(seps, " | ") + " |\n")

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			if c == "" {
				c = "n/a"
			}
			cells[i] = strings.ReplaceAll(c, "|", "\\|")
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
