package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/menuctl/internal/theme"
)

var styles = theme.Default()

// View renders the demo: a canvas of list entries, the simulated context
// menu when shown, any visible tooltips, and a key-hint footer.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Header.Render("menuctl demo — " + m.window.Handle()))
	b.WriteString("\n\n")

	for row := 0; row < canvasRows; row++ {
		marker := "  "
		if row == m.row {
			marker = styles.PointerMarker.Render("▶ ")
		}
		line := fmt.Sprintf("%sEntry %d", marker, row+1)
		b.WriteString(styles.Canvas.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.window.Visible() {
		b.WriteString(m.renderMenu())
		b.WriteString("\n")
	}

	for _, text := range m.overlay.Notes() {
		b.WriteString(styles.Tooltip.Render(text))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderMenu() string {
	var rows []string
	if m.filtering || m.filter.Value() != "" {
		rows = append(rows, styles.FilterPrompt.Render(m.filter.View()))
	}
	entries := m.visibleEntries()
	if len(entries) == 0 {
		rows = append(rows, styles.Item.Render("(no matches)"))
	}
	for i, e := range entries {
		mark := "  "
		if e.Checked {
			mark = styles.CheckedMark.Render("✓ ")
		}
		label := mark + e.Name
		switch {
		case e.Disabled:
			label = styles.DisabledItem.Render(label)
		case i == m.cursor:
			label = styles.SelectedItem.Render(label)
		default:
			label = styles.Item.Render(label)
		}
		rows = append(rows, label)
	}
	return styles.MenuBorder.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderFooter() string {
	hints := "j/k move · m context menu · enter select · / filter · esc dismiss · q quit"
	if m.verbose {
		hints += fmt.Sprintf(" · %d items", m.ctrl.Registry().Len())
	}
	return styles.Footer.Render(hints)
}
