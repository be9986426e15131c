package notion

import "strings"

// RichText is one segment of a Notion rich text value. Reads carry
// plain_text; writes carry text.content.
type RichText struct {
	Text      *Text  `json:"text,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
}

type Text struct {
	Content string `json:"content"`
}

// PlainText joins the plain text of all segments.
func PlainText(rt []RichText) string {
	var b strings.Builder
	for _, seg := range rt {
		if seg.PlainText != "" {
			b.WriteString(seg.PlainText)
		} else if seg.Text != nil {
			b.WriteString(seg.Text.Content)
		}
	}
	return b.String()
}

// SelectOption is one enumerated option of a select or status property.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Date struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

type RelationRef struct {
	ID string `json:"id"`
}

// PropertyValue is a page property as returned by queries. Exactly one of
// the typed fields is populated, matching Type.
type PropertyValue struct {
	ID       string        `json:"id,omitempty"`
	Type     string        `json:"type,omitempty"`
	Title    []RichText    `json:"title,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Status   *SelectOption `json:"status,omitempty"`
	Date     *Date         `json:"date,omitempty"`
	Relation []RelationRef `json:"relation,omitempty"`
}

// Icon is a page icon; only emoji and external URLs are of interest here.
type Icon struct {
	Type     string    `json:"type,omitempty"`
	Emoji    string    `json:"emoji,omitempty"`
	External *External `json:"external,omitempty"`
}

type External struct {
	URL string `json:"url"`
}

// Page is a row of a Notion database.
type Page struct {
	ID         string                   `json:"id"`
	Icon       *Icon                    `json:"icon,omitempty"`
	Properties map[string]PropertyValue `json:"properties"`
}

// DatabaseRef is the slim shape returned by search, enough for setup to
// let the user pick ids.
type DatabaseRef struct {
	ID    string
	Title string
}

// Database is the schema of a database, used to read select options.
type Database struct {
	ID         string                    `json:"id"`
	Title      []RichText                `json:"title"`
	Properties map[string]SchemaProperty `json:"properties"`
}

type SchemaProperty struct {
	ID     string        `json:"id,omitempty"`
	Type   string        `json:"type"`
	Select *SelectSchema `json:"select,omitempty"`
	Status *SelectSchema `json:"status,omitempty"`
}

type SelectSchema struct {
	Options []SelectOption `json:"options"`
}

// SelectOptions returns the enumerated options of the named select
// property, or nil when the property is absent or not a select.
func (d *Database) SelectOptions(property string) []SelectOption {
	if d == nil {
		return nil
	}
	prop, ok := d.Properties[property]
	if !ok || prop.Type != "select" || prop.Select == nil {
		return nil
	}
	return prop.Select.Options
}
