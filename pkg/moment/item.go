package moment

import "tableflip.dev/momentchen/pkg/notion"

// Item is a mapped remote record: the fields every collection flattens out
// of a page, plus the untouched page for deep lookups.
type Item[T any] struct {
	ID      string
	Icon    string
	Title   string
	Content T
}

// Moment is a logged, time-stamped note.
type Moment struct {
	Item[notion.Page]
}

// Project is an active project a moment may be linked to.
type Project struct {
	Item[notion.Page]
}

// LifeArea is a life area a moment may be linked to instead of a project.
type LifeArea struct {
	Item[notion.Page]
}

// The three collections use differently named title properties; the
// heterogeneity is part of the remote schemas and preserved here.
const (
	momentTitleProperty   = "Name"
	projectTitleProperty  = "Projekt"
	lifeAreaTitleProperty = "Thema"

	TypeProperty      = "Typ"
	TimestampProperty = "Zeitpunkt"
	ProjectProperty   = "Projekt"
	LifeAreaProperty  = "Lebensbereich"
)

func iconOf(p notion.Page) string {
	if p.Icon == nil {
		return ""
	}
	if p.Icon.External != nil {
		return p.Icon.External.URL
	}
	return p.Icon.Emoji
}

func titleOf(p notion.Page, property string) string {
	prop, ok := p.Properties[property]
	if !ok {
		return ""
	}
	return notion.PlainText(prop.Title)
}

// MapMoment maps a raw page from the moments database. Missing nested
// fields fall back to empty strings; a sparse record never fails a batch.
func MapMoment(p notion.Page) Moment {
	return Moment{Item[notion.Page]{
		ID:      p.ID,
		Icon:    iconOf(p),
		Title:   titleOf(p, momentTitleProperty),
		Content: p,
	}}
}

// MapProject maps a raw page from the projects database.
func MapProject(p notion.Page) Project {
	return Project{Item[notion.Page]{
		ID:      p.ID,
		Icon:    iconOf(p),
		Title:   titleOf(p, projectTitleProperty),
		Content: p,
	}}
}

// MapLifeArea maps a raw page from the life areas database.
func MapLifeArea(p notion.Page) LifeArea {
	return LifeArea{Item[notion.Page]{
		ID:      p.ID,
		Icon:    iconOf(p),
		Title:   titleOf(p, lifeAreaTitleProperty),
		Content: p,
	}}
}
