package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/momentchen/pkg/app"
	"tableflip.dev/momentchen/pkg/printers"
)

const layoutUS = "January 2, 2006"

// Get prints today's moments with their resolved projects and life areas.
type Get struct {
	ShowID bool
	Watch  bool

	Svc *app.Service
}

func (g *Get) Do(ctx context.Context) error {
	if g.Svc == nil {
		return errors.New("can not get, no service")
	}
	if err := g.Svc.Init(ctx); err != nil {
		return err
	}
	if g.Svc.NeedsSetup() {
		if msg := g.Svc.SetupMessage(); msg != "" {
			return fmt.Errorf("%s %w", msg, app.ErrNeedsSetup)
		}
		return app.ErrNeedsSetup
	}

	if err := g.print(ctx); err != nil {
		return err
	}
	if !g.Watch {
		return nil
	}

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := g.print(ctx); err != nil {
				return err
			}
		}
	}
}

func (g *Get) print(ctx context.Context) error {
	if err := g.Svc.RefreshAll(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: g.ShowID}
	fmt.Println("")
	pp.Title(time.Now().Format(layoutUS))
	pp.Moments(g.Svc.Moments.Snapshot().Data, g.Svc.ResolveRelation)
	return nil
}
