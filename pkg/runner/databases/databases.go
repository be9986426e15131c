package databases

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/momentchen/pkg/app"
	"tableflip.dev/momentchen/pkg/printers"
)

// Databases lists every database the integration can see, a setup aid for
// picking the three ids.
type Databases struct {
	Svc *app.Service
}

func (d *Databases) Do(ctx context.Context) error {
	if d.Svc == nil {
		return errors.New("can not list databases, no service")
	}
	if err := d.Svc.Init(ctx); err != nil {
		return err
	}
	client, err := d.Svc.Client()
	if err != nil {
		return err
	}

	refs, err := client.SearchDatabases(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Databases shared with this integration")
	pp.Databases(refs)
	return nil
}
