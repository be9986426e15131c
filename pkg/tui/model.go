package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/momentchen/pkg/app"
	"tableflip.dev/momentchen/pkg/draft"
	"tableflip.dev/momentchen/pkg/moment"
	"tableflip.dev/momentchen/pkg/notion"
	"tableflip.dev/momentchen/pkg/theme"
)

// focus areas, cycled with tab
type focus int

const (
	focusDescription focus = iota
	focusType
	focusCategory
	focusList
)

const (
	clockInterval = time.Second
	pollInterval  = 15 * time.Second
)

// Model is the main view: the moment form on top, today's list below.
type Model struct {
	svc   *app.Service
	th    *theme.Theme
	ctx   context.Context
	focus focus

	input   textinput.Model
	momList list.Model

	types      []notion.SelectOption
	typeIndex  int
	catOptions []categoryOption
	catIndex   int

	isPending bool
	status    string

	termWidth  int
	termHeight int
}

// New builds the model around the shared service.
func New(svc *app.Service, th *theme.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "What just happened?"
	ti.CharLimit = 256
	ti.Focus()
	ti.Prompt = ""

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)

	l := list.New([]list.Item{}, delegate, 80, 20)
	l.Title = "Today"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return Model{
		svc:        svc,
		th:         th,
		ctx:        context.Background(),
		focus:      focusDescription,
		input:      ti,
		momList:    l,
		catOptions: buildCategoryOptions(nil, nil),
		status:     "tab next field, enter save, e edit, esc cancel, ctrl+t theme, ctrl+c quit",
	}
}

// messages
type errMsg struct{ err error }
type clockTickMsg time.Time
type pollTickMsg time.Time
type typesLoadedMsg struct{ types []notion.SelectOption }
type dataRefreshedMsg struct{}
type submitDoneMsg struct{}

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return pollTickMsg(t) })
}

// Init kicks off the schema fetch, the first poll, both tickers, and asks
// the terminal for its background color so the theme can follow the system.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTypes(), m.refreshData(), clockTick(), pollTick(), tea.RequestBackgroundColor)
}

func (m *Model) loadTypes() tea.Cmd {
	return func() tea.Msg {
		types, err := m.svc.MomentTypes(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return typesLoadedMsg{types}
	}
}

func (m *Model) refreshData() tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.RefreshAll(m.ctx); err != nil {
			return errMsg{err}
		}
		return dataRefreshedMsg{}
	}
}

func (m *Model) submit() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.svc.Submit(m.ctx); err != nil {
			return errMsg{err}
		}
		return submitDoneMsg{}
	}
}

// syncFromSnapshots rebuilds list items and category options from the
// cached collections.
func (m *Model) syncFromSnapshots() {
	projects := m.svc.Projects.Snapshot().Data
	lifeAreas := m.svc.LifeAreas.Snapshot().Data

	selected := moment.Category{}
	if len(m.catOptions) > 0 && m.catIndex < len(m.catOptions) {
		selected = m.catOptions[m.catIndex].Category
	}
	m.catOptions = buildCategoryOptions(projects, lifeAreas)
	m.catIndex = categoryIndex(m.catOptions, selected)

	moments := m.svc.Moments.Snapshot().Data
	items := make([]list.Item, 0, len(moments))
	for _, mo := range moments {
		items = append(items, momentItem{m: mo, resolve: m.svc.ResolveRelation})
	}
	m.momList.SetItems(items)
}

// syncDraftFromForm pushes the visible form state into the draft manager.
func (m *Model) syncDraftFromForm() {
	d := m.svc.Draft
	d.SetDescription(m.input.Value())
	if len(m.types) > 0 {
		d.SetType(m.types[m.typeIndex].Name)
	}
	if len(m.catOptions) > 0 {
		d.SetCategory(m.catOptions[m.catIndex].Category)
	}
}

// syncFormFromDraft pulls the draft into the form, used after reset and
// when entering edit mode.
func (m *Model) syncFormFromDraft() {
	d := m.svc.Draft.Draft()
	m.input.SetValue(d.Description)
	m.typeIndex = 0
	for i, opt := range m.types {
		if opt.Name == d.Type {
			m.typeIndex = i
			break
		}
	}
	m.catIndex = categoryIndex(m.catOptions, moment.CategoryFromForm(d.Category, d.IsProject))
}

func (m *Model) selectedMoment() (moment.Moment, bool) {
	sel := m.momList.SelectedItem()
	if sel == nil {
		return moment.Moment{}, false
	}
	it, ok := sel.(momentItem)
	if !ok {
		return moment.Moment{}, false
	}
	return it.m, true
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.momList.SetSize(msg.Width-4, max(msg.Height-10, 5))
	case tea.BackgroundColorMsg:
		m.th.ApplySystem(msg.IsDark())
	case errMsg:
		m.isPending = false
		m.status = "ERR: " + msg.err.Error()
	case clockTickMsg:
		m.svc.Draft.Tick()
		cmds = append(cmds, clockTick())
	case pollTickMsg:
		cmds = append(cmds, m.refreshData(), pollTick())
	case typesLoadedMsg:
		m.types = msg.types
		m.syncFormFromDraft()
	case dataRefreshedMsg:
		m.syncFromSnapshots()
	case submitDoneMsg:
		m.isPending = false
		m.status = "saved"
		m.syncFromSnapshots()
		m.syncFormFromDraft()
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			if err := m.th.Toggle(m.ctx); err != nil {
				m.status = "ERR: " + err.Error()
			}
		case "tab":
			m.focus = (m.focus + 1) % 4
			m.applyFocus()
		case "shift+tab":
			m.focus = (m.focus + 3) % 4
			m.applyFocus()
		case "esc":
			if m.svc.Draft.Mode() == draft.Editing {
				m.svc.Draft.CancelEdit()
				m.syncFormFromDraft()
				m.focus = focusDescription
				m.applyFocus()
				m.status = "edit cancelled"
			}
		case "ctrl+n":
			m.svc.Draft.SetNow()
		default:
			return m.updateFocused(msg, cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateFocused(msg tea.KeyPressMsg, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusDescription:
		if msg.String() == "enter" {
			return m.startSubmit(cmds)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.svc.Draft.SetDescription(m.input.Value())
		cmds = append(cmds, cmd)
	case focusType:
		switch msg.String() {
		case "left", "h":
			if len(m.types) > 0 {
				m.typeIndex = (m.typeIndex + len(m.types) - 1) % len(m.types)
				m.svc.Draft.SetType(m.types[m.typeIndex].Name)
			}
		case "right", "l":
			if len(m.types) > 0 {
				m.typeIndex = (m.typeIndex + 1) % len(m.types)
				m.svc.Draft.SetType(m.types[m.typeIndex].Name)
			}
		case "enter":
			return m.startSubmit(cmds)
		}
	case focusCategory:
		switch msg.String() {
		case "left", "h":
			if len(m.catOptions) > 0 {
				m.catIndex = (m.catIndex + len(m.catOptions) - 1) % len(m.catOptions)
				m.svc.Draft.SetCategory(m.catOptions[m.catIndex].Category)
			}
		case "right", "l":
			if len(m.catOptions) > 0 {
				m.catIndex = (m.catIndex + 1) % len(m.catOptions)
				m.svc.Draft.SetCategory(m.catOptions[m.catIndex].Category)
			}
		case "enter":
			return m.startSubmit(cmds)
		}
	case focusList:
		switch msg.String() {
		case "e", "enter":
			if mo, ok := m.selectedMoment(); ok {
				m.svc.Draft.StartEdit(mo)
				m.syncFormFromDraft()
				m.focus = focusDescription
				m.applyFocus()
				m.status = "editing moment"
			}
		case "q":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.momList, cmd = m.momList.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// startSubmit dispatches the one pending mutation; a second attempt while
// one is in flight is ignored at this boundary.
func (m Model) startSubmit(cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	if m.isPending {
		m.status = "still saving"
		return m, tea.Batch(cmds...)
	}
	m.syncDraftFromForm()
	m.isPending = true
	m.status = "saving"
	cmds = append(cmds, m.submit())
	return m, tea.Batch(cmds...)
}

func (m *Model) applyFocus() {
	if m.focus == focusDescription {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// Run launches the program.
func Run(svc *app.Service, th *theme.Theme) error {
	p := tea.NewProgram(New(svc, th), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
