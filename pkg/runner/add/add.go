package add

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/momentchen/pkg/app"
	"tableflip.dev/momentchen/pkg/moment"
	"tableflip.dev/momentchen/pkg/notion"
	"tableflip.dev/momentchen/pkg/printers"
)

const layoutUS = "January 2, 2006"

// Add creates a new moment from command line input. Category flags accept
// either a remote id or a title from the active project/life area lists.
type Add struct {
	Description string
	Type        string
	Project     string
	LifeArea    string
	At          string

	Svc *app.Service
}

func (a *Add) Do(ctx context.Context) error {
	if a.Svc == nil {
		return errors.New("can not add, no service")
	}
	if strings.TrimSpace(a.Description) == "" {
		return errors.New("a description is required")
	}
	if a.Project != "" && a.LifeArea != "" {
		return errors.New("a moment belongs to a project or a life area, not both")
	}

	if err := a.Svc.Init(ctx); err != nil {
		return err
	}
	if a.Svc.NeedsSetup() {
		return app.ErrNeedsSetup
	}

	types, err := a.Svc.MomentTypes(ctx)
	if err != nil {
		return err
	}
	if err := a.Svc.RefreshAll(ctx); err != nil {
		return err
	}

	d := a.Svc.Draft
	d.SetDescription(a.Description)

	if a.Type != "" {
		name, ok := matchType(a.Type, types)
		if !ok {
			return fmt.Errorf("unknown type %q", a.Type)
		}
		d.SetType(name)
	}

	if a.Project != "" {
		id, ok := matchProject(a.Project, a.Svc.Projects.Snapshot().Data)
		if !ok {
			return fmt.Errorf("no active project matches %q", a.Project)
		}
		d.SetCategory(moment.Category{Kind: moment.CategoryProject, ID: id})
	}
	if a.LifeArea != "" {
		id, ok := matchLifeArea(a.LifeArea, a.Svc.LifeAreas.Snapshot().Data)
		if !ok {
			return fmt.Errorf("no active life area matches %q", a.LifeArea)
		}
		d.SetCategory(moment.Category{Kind: moment.CategoryLifeArea, ID: id})
	}

	if a.At != "" {
		at, err := parseAt(a.At, time.Now())
		if err != nil {
			return err
		}
		d.SetTimestamp(moment.ToNotionTime(at))
	}

	if _, err := a.Svc.Submit(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(time.Now().Format(layoutUS))
	pp.Moments(a.Svc.Moments.Snapshot().Data, a.Svc.ResolveRelation)
	return nil
}

func matchType(input string, types []notion.SelectOption) (string, bool) {
	for _, opt := range types {
		if strings.EqualFold(opt.Name, input) {
			return opt.Name, true
		}
	}
	return "", false
}

func matchProject(input string, projects []moment.Project) (string, bool) {
	for _, p := range projects {
		if p.ID == input || strings.EqualFold(p.Title, input) {
			return p.ID, true
		}
	}
	return "", false
}

func matchLifeArea(input string, lifeAreas []moment.LifeArea) (string, bool) {
	for _, la := range lifeAreas {
		if la.ID == input || strings.EqualFold(la.Title, input) {
			return la.ID, true
		}
	}
	return "", false
}

// parseAt accepts a clock time on the current day or a full RFC3339 instant.
func parseAt(input string, now time.Time) (time.Time, error) {
	if at, err := time.Parse(time.RFC3339, input); err == nil {
		return at, nil
	}
	if clock, err := time.Parse("15:04", input); err == nil {
		return time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("can not parse %q, use 15:04 or RFC3339", input)
}
