package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/momentchen/pkg/moment"
	"tableflip.dev/momentchen/pkg/notion"
)

type PrettyPrint struct {
	ShowID bool
	Width  int
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-a1b2-c3d4e5f60789  "))
)

func (pp *PrettyPrint) width() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return 80
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Moments prints today's moments, one per line: local time, type badge,
// description and, when loaded, the resolved project or life area.
func (pp *PrettyPrint) Moments(moments []moment.Moment, resolve func(moment.Moment) *moment.Resolution) {
	if len(moments) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	for _, m := range moments {
		if pp.ShowID {
			_, _ = y.Print(m.ID)
			if pad := len(spacing) - len(m.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			} else {
				_, _ = y.Print("  ")
			}
		}

		when := "--:--"
		if ts := moment.FromNotionTime(m.Timestamp()); !ts.IsZero() {
			when = ts.Format("15:04")
		}
		_, _ = f.Printf("%s  ", when)

		badge := color.New(moment.ColorAttribute(m.TypeColor()), color.Bold)
		if name := m.TypeName(); name != "" {
			_, _ = badge.Printf("[%s] ", name)
		}

		_, _ = t.Print(wordwrap.String(m.Title, pp.width()))

		if r := resolve(m); r != nil {
			switch r.Kind {
			case moment.CategoryProject:
				_, _ = f.Printf("  (project: %s)", r.Title)
			case moment.CategoryLifeArea:
				_, _ = f.Printf("  (life area: %s)", r.Title)
			}
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Databases prints the setup helper table of accessible databases.
func (pp *PrettyPrint) Databases(refs []notion.DatabaseRef) {
	if len(refs) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none shared with this integration\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("ID", "TITLE")
	for _, ref := range refs {
		table.AddRow(ref.ID, ref.Title)
	}
	fmt.Println(table)
	fmt.Println("")
}
