package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// column is a fixed-width table column. Cells wider than width are cut.
type column struct {
	title string
	width int
	right bool
}

// renderTable draws rows under a header. The row at selected gets a cursor
// marker; pass -1 for none.
func renderTable(columns []column, rows [][]string, selected int) string {
	var b strings.Builder

	header := make([]string, len(columns))
	rule := make([]string, len(columns))
	for i, c := range columns {
		header[i] = padCell(c.title, c.width, false)
		rule[i] = strings.Repeat("─", c.width)
	}
	b.WriteString("  ")
	b.WriteString(strings.Join(header, " │ "))
	b.WriteString("\n──")
	b.WriteString(strings.Join(rule, "─┼─"))
	b.WriteString("\n")

	for i, row := range rows {
		cells := make([]string, len(columns))
		for j, c := range columns {
			var v string
			if j < len(row) {
				v = row[j]
			}
			cells[j] = padCell(fitText(v, c.width), c.width, c.right)
		}

		line := strings.Join(cells, " │ ")
		if i == selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func padCell(v string, width int, right bool) string {
	pad := width - lipgloss.Width(v)
	if pad <= 0 {
		return v
	}
	if right {
		return strings.Repeat(" ", pad) + v
	}
	return v + strings.Repeat(" ", pad)
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func formatKWh(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
