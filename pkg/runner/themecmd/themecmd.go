package themecmd

import (
	"context"
	"fmt"

	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/theme"
)

// ThemeCmd shows or sets the persisted appearance preference.
type ThemeCmd struct {
	Value string // "", "light", "dark" or "system"

	Store credstore.Store
}

func (t *ThemeCmd) Do(ctx context.Context) error {
	th := theme.Load(ctx, t.Store)

	switch t.Value {
	case "":
		mode := string(th.Preference())
		if th.SyncWithSystem() {
			mode += " (following system)"
		}
		fmt.Println(mode)
		return nil
	case "light":
		return th.Set(ctx, theme.Light)
	case "dark":
		return th.Set(ctx, theme.Dark)
	case "system":
		return th.SetSyncWithSystem(ctx, true)
	default:
		return fmt.Errorf("unknown theme %q, use light, dark or system", t.Value)
	}
}
