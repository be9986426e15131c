package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/momentchen/pkg/draft"
	"tableflip.dev/momentchen/pkg/moment"
	"tableflip.dev/momentchen/pkg/theme"
)

// View renders the form card above today's list, bujo-style single column.
func (m Model) View() string {
	styles := m.th.Styles()
	var b strings.Builder

	header := "New moment"
	if m.svc.Draft.Mode() == draft.Editing {
		header = "Editing moment (esc to cancel)"
	}
	b.WriteString(styles.Title.Render(header))
	b.WriteString("\n")

	form := []string{
		m.renderField(styles.Faint, focusDescription, "what ", m.input.View()),
		m.renderField(styles.Faint, focusType, "type ", m.renderTypes()),
		m.renderField(styles.Faint, focusCategory, "link ", m.renderCategory(styles.Accent)),
		styles.Faint.Render("when ") + m.renderTimestamp(),
	}
	b.WriteString(styles.Frame.Render(strings.Join(form, "\n")))
	b.WriteString("\n\n")

	b.WriteString(m.momList.View())
	b.WriteString("\n")

	status := m.status
	if m.isPending {
		status = "saving..."
	}
	if strings.HasPrefix(status, "ERR: ") {
		b.WriteString(styles.Error.Render(status))
	} else {
		b.WriteString(styles.Faint.Render(status))
	}
	return b.String()
}

func (m Model) renderField(label lipgloss.Style, f focus, name, value string) string {
	marker := "  "
	if m.focus == f {
		marker = "> "
	}
	return marker + label.Render(name) + value
}

func (m Model) renderTypes() string {
	if len(m.types) == 0 {
		return "loading types..."
	}
	parts := make([]string, 0, len(m.types))
	for i, opt := range m.types {
		if i == m.typeIndex {
			parts = append(parts, badgeFor(opt.Name, opt.Color))
		} else {
			parts = append(parts, opt.Name)
		}
	}
	return strings.Join(parts, " ")
}

func badgeFor(name, color string) string {
	return theme.Badge(color).Render(name)
}

func (m Model) renderCategory(accent lipgloss.Style) string {
	if len(m.catOptions) == 0 {
		return "none"
	}
	opt := m.catOptions[m.catIndex]
	label := opt.Label
	switch opt.Category.Kind {
	case moment.CategoryProject:
		label += " (project)"
	case moment.CategoryLifeArea:
		label += " (life area)"
	}
	return accent.Render(label)
}

func (m Model) renderTimestamp() string {
	d := m.svc.Draft.Draft()
	ts := moment.FromNotionTime(d.Timestamp)
	if ts.IsZero() {
		return d.Timestamp
	}
	return ts.Format("15:04:05")
}
