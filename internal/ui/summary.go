package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// FileStatus is one row of the batch check summary.
type FileStatus struct {
	Path   string
	OK     bool
	Tokens int    // количество токенов чистого скана
	Detail string // короткое описание сбоя
}

// RenderSummary печатает итоговую таблицу batch-проверки: по строке на
// файл плюс заголовок и счётчик сбоев. Width ограничивает ширину строк;
// 0 — ширина по умолчанию 80.
func RenderSummary(w io.Writer, title string, items []FileStatus, width int) {
	if width <= 0 {
		width = 80
	}
	statusWidth := 10
	nameWidth := width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	failed := 0
	for _, item := range items {
		name := truncate(item.Path, nameWidth)
		if item.OK {
			b.WriteString(fmt.Sprintf("  %s %s (%d tokens)\n",
				okStyle.Render("ok  "), name, item.Tokens))
			continue
		}
		failed++
		b.WriteString(fmt.Sprintf("  %s %s: %s\n",
			failStyle.Render("FAIL"), name, item.Detail))
	}

	if failed == 0 {
		b.WriteString(okStyle.Render(fmt.Sprintf("%d file(s), all clean", len(items))))
	} else {
		b.WriteString(failStyle.Render(fmt.Sprintf("%d of %d file(s) failed", failed, len(items))))
	}
	b.WriteString("\n")

	fmt.Fprint(w, b.String())
}

func truncate(value string, width int) string {
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
