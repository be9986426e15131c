// Package theme holds the user's light/dark preference and the Lip Gloss
// styles derived from it. The preference is an explicitly owned object
// handed to consumers, persisted next to the credential record.
package theme

import (
	"context"
	"sync"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/moment"
)

// Preference is the persisted appearance choice.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// Theme is the process-wide appearance state.
type Theme struct {
	store credstore.Store

	mu         sync.Mutex
	pref       Preference
	syncSystem bool
}

// Load reads the persisted preference. Anything unreadable falls back to
// dark with system sync on.
func Load(ctx context.Context, store credstore.Store) *Theme {
	t := &Theme{store: store, pref: Dark, syncSystem: true}
	if store == nil {
		return t
	}
	if raw, err := store.GetRaw(ctx, credstore.KeyTheme); err == nil {
		switch Preference(raw) {
		case Light, Dark:
			t.pref = Preference(raw)
		}
	}
	if raw, err := store.GetRaw(ctx, credstore.KeyThemeSyncSystem); err == nil && raw != "" {
		t.syncSystem = raw == "true"
	}
	return t
}

// Preference returns the current choice.
func (t *Theme) Preference() Preference {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pref
}

// SyncWithSystem reports whether the preference follows the OS signal.
func (t *Theme) SyncWithSystem() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.syncSystem
}

// Set persists an explicit choice and turns system sync off.
func (t *Theme) Set(ctx context.Context, pref Preference) error {
	t.mu.Lock()
	t.pref = pref
	t.syncSystem = false
	t.mu.Unlock()
	if t.store == nil {
		return nil
	}
	if err := t.store.SetRaw(ctx, credstore.KeyTheme, string(pref)); err != nil {
		return err
	}
	return t.store.SetRaw(ctx, credstore.KeyThemeSyncSystem, "false")
}

// SetSyncWithSystem persists the sync flag; an OS change event then drives
// ApplySystem.
func (t *Theme) SetSyncWithSystem(ctx context.Context, sync bool) error {
	t.mu.Lock()
	t.syncSystem = sync
	t.mu.Unlock()
	if t.store == nil {
		return nil
	}
	value := "false"
	if sync {
		value = "true"
	}
	return t.store.SetRaw(ctx, credstore.KeyThemeSyncSystem, value)
}

// ApplySystem applies an OS appearance signal without persisting it as an
// explicit choice. No-op unless system sync is on.
func (t *Theme) ApplySystem(dark bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.syncSystem {
		return
	}
	if dark {
		t.pref = Dark
	} else {
		t.pref = Light
	}
}

// Toggle flips between light and dark.
func (t *Theme) Toggle(ctx context.Context) error {
	if t.Preference() == Dark {
		return t.Set(ctx, Light)
	}
	return t.Set(ctx, Dark)
}

// Styles groups the Lip Gloss styles the UI renders with.
type Styles struct {
	Title  lipgloss.Style
	Faint  lipgloss.Style
	Accent lipgloss.Style
	Error  lipgloss.Style
	Frame  lipgloss.Style
}

// Styles derives the style set for the current preference.
func (t *Theme) Styles() Styles {
	if t.Preference() == Light {
		return Styles{
			Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1a1a1a")),
			Faint:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6b6b6b")),
			Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("#2383e2")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#c4242b")),
			Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#bdbdbd")).Padding(0, 1),
		}
	}
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5f5f5")),
		Faint:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8c8c8c")),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("#62aef7")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")),
		Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4a4a4a")).Padding(0, 1),
	}
}

// Badge renders a filled tag in a Notion select color, picking black or
// white text by the background's luminance.
func Badge(notionColor string) lipgloss.Style {
	hex := moment.ColorHex(notionColor)
	fg := "#ffffff"
	if c, err := colorful.Hex(hex); err == nil {
		if _, _, l := c.Hsl(); l > 0.5 {
			fg = "#000000"
		}
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1)
}
