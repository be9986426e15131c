package tui

import (
	"fmt"

	"tableflip.dev/momentchen/pkg/moment"
)

// momentItem adapts a moment for the Bubbles list.
type momentItem struct {
	m       moment.Moment
	resolve func(moment.Moment) *moment.Resolution
}

func (it momentItem) Title() string {
	when := "--:--"
	if ts := moment.FromNotionTime(it.m.Timestamp()); !ts.IsZero() {
		when = ts.Format("15:04")
	}
	label := it.m.Title
	if name := it.m.TypeName(); name != "" {
		label = fmt.Sprintf("[%s] %s", name, label)
	}
	return fmt.Sprintf("%s  %s", when, label)
}

func (it momentItem) Description() string {
	r := it.resolve(it.m)
	if r == nil {
		return ""
	}
	switch r.Kind {
	case moment.CategoryProject:
		return "project: " + r.Title
	case moment.CategoryLifeArea:
		return "life area: " + r.Title
	}
	return ""
}

func (it momentItem) FilterValue() string { return it.m.Title }

// categoryOption is one entry of the category picker: none first, then the
// active projects, then the active life areas.
type categoryOption struct {
	Label    string
	Category moment.Category
}

func buildCategoryOptions(projects []moment.Project, lifeAreas []moment.LifeArea) []categoryOption {
	opts := make([]categoryOption, 0, 1+len(projects)+len(lifeAreas))
	opts = append(opts, categoryOption{Label: "none"})
	for _, p := range projects {
		opts = append(opts, categoryOption{
			Label:    p.Title,
			Category: moment.Category{Kind: moment.CategoryProject, ID: p.ID},
		})
	}
	for _, la := range lifeAreas {
		opts = append(opts, categoryOption{
			Label:    la.Title,
			Category: moment.Category{Kind: moment.CategoryLifeArea, ID: la.ID},
		})
	}
	return opts
}

// categoryIndex finds the option matching a category, falling back to none.
func categoryIndex(opts []categoryOption, cat moment.Category) int {
	for i, opt := range opts {
		if opt.Category.Kind == cat.Kind && opt.Category.ID == cat.ID {
			return i
		}
	}
	return 0
}
