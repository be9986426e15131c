package tui

import (
	"context"
	"image/color"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/momentchen/pkg/app"
	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/theme"
)

func TestBackgroundColorReportDrivesTheme(t *testing.T) {
	ctx := context.Background()
	store := credstore.NewMemory()
	th := theme.Load(ctx, store)
	m := New(app.New(store), th)

	updated, _ := m.Update(tea.BackgroundColorMsg{Color: color.White})
	if th.Preference() != theme.Light {
		t.Fatalf("expected a light background report to switch the theme, got %q", th.Preference())
	}

	m = updated.(Model)
	if _, _ = m.Update(tea.BackgroundColorMsg{Color: color.Black}); th.Preference() != theme.Dark {
		t.Fatalf("expected a dark background report to switch back, got %q", th.Preference())
	}
}

func TestBackgroundColorReportRespectsExplicitChoice(t *testing.T) {
	ctx := context.Background()
	store := credstore.NewMemory()
	th := theme.Load(ctx, store)
	if err := th.Set(ctx, theme.Dark); err != nil {
		t.Fatal(err)
	}
	m := New(app.New(store), th)

	if _, _ = m.Update(tea.BackgroundColorMsg{Color: color.White}); th.Preference() != theme.Dark {
		t.Fatal("an explicit choice must not follow the terminal background")
	}
}
