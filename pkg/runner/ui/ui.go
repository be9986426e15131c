package ui

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/momentchen/pkg/app"
	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/theme"
	"tableflip.dev/momentchen/pkg/tui"
)

// UI opens the full-screen moment view.
type UI struct {
	Svc   *app.Service
	Store credstore.Store
}

func (u *UI) Do(ctx context.Context) error {
	if u.Svc == nil {
		return errors.New("can not open ui, no service")
	}
	if err := u.Svc.Init(ctx); err != nil {
		return err
	}
	if u.Svc.NeedsSetup() {
		if msg := u.Svc.SetupMessage(); msg != "" {
			return fmt.Errorf("%s %w", msg, app.ErrNeedsSetup)
		}
		return app.ErrNeedsSetup
	}

	th := theme.Load(ctx, u.Store)
	return tui.Run(u.Svc, th)
}
