// Package draft holds the in-progress form state for the moment being
// created or edited.
package draft

import (
	"sync"
	"time"

	"tableflip.dev/momentchen/pkg/moment"
	"tableflip.dev/momentchen/pkg/notion"
)

// Mode is the manager's logical state.
type Mode int

const (
	// Creating is the initial state: the form builds a new moment.
	Creating Mode = iota
	// Editing is entered when the user picks an existing moment to modify.
	Editing
)

// Draft is the normalized form state.
type Draft struct {
	Description string
	Type        string
	Category    string
	IsProject   bool
	Timestamp   string
}

// Manager owns the draft and its two-state lifecycle.
type Manager struct {
	mu      sync.Mutex
	mode    Mode
	editing *moment.Moment
	draft   Draft
	types   []notion.SelectOption
	now     func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithNow replaces the clock (tests).
func WithNow(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager returns a manager in Creating state with a default draft.
func NewManager(opts ...Option) *Manager {
	m := &Manager{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	m.draft = m.defaults()
	return m
}

func (m *Manager) defaults() Draft {
	d := Draft{
		IsProject: true,
		Timestamp: moment.ToNotionTime(m.now()),
	}
	if len(m.types) > 0 {
		d.Type = m.types[0].Name
	}
	return d
}

// Draft returns a copy of the current form state.
func (m *Manager) Draft() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// Mode returns the current state.
func (m *Manager) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// Editing returns the moment being edited, or nil in Creating state.
func (m *Manager) Editing() *moment.Moment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.editing
}

// Category returns the draft's category as the tagged union.
func (m *Manager) Category() moment.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	return moment.CategoryFromForm(m.draft.Category, m.draft.IsProject)
}

// SetTypes installs the loaded type options. While the draft's type is
// still unset it defaults to the first available option.
func (m *Manager) SetTypes(types []notion.SelectOption) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.types = types
	if m.draft.Type == "" && len(types) > 0 {
		m.draft.Type = types[0].Name
	}
}

// Types returns the loaded type options.
func (m *Manager) Types() []notion.SelectOption {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.types
}

// Tick advances the live clock. While creating and the description is
// empty the timestamp tracks "now"; once the user starts typing it stays
// pinned to whatever was last set.
func (m *Manager) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mode == Creating && m.draft.Description == "" {
		m.draft.Timestamp = moment.ToNotionTime(m.now())
	}
}

// SetDescription updates the description.
func (m *Manager) SetDescription(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Description = s
}

// SetType updates the selected type name.
func (m *Manager) SetType(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Type = name
}

// SetCategory updates the category from the tagged union.
func (m *Manager) SetCategory(c moment.Category) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Category, m.draft.IsProject = c.FormValues()
}

// SetTimestamp pins the timestamp to an explicit instant string.
func (m *Manager) SetTimestamp(ts string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Timestamp = ts
}

// SetNow pins the timestamp to the current instant.
func (m *Manager) SetNow() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Timestamp = moment.ToNotionTime(m.now())
}

// StartEdit populates the draft from an existing moment and enters Editing.
// The moment's own timestamp is kept, not reset to now.
func (m *Manager) StartEdit(mo moment.Moment) {
	m.mu.Lock()
	defer m.mu.Unlock()

	typeName := mo.TypeName()
	if typeName == "" && len(m.types) > 0 {
		typeName = m.types[0].Name
	}

	m.draft = Draft{
		Description: mo.Title,
		Type:        typeName,
		Category:    mo.RelationID(),
		IsProject:   mo.ProjectRelationID() != "",
		Timestamp:   mo.Timestamp(),
	}
	m.editing = &mo
	m.mode = Editing
}

// CancelEdit leaves Editing and resets the draft to defaults.
func (m *Manager) CancelEdit() {
	m.reset()
}

// ResetAfterSubmit resets the draft after a successful submit.
func (m *Manager) ResetAfterSubmit() {
	m.reset()
}

func (m *Manager) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = m.defaults()
	m.editing = nil
	m.mode = Creating
}
