package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/momentchen/pkg/app"
	"tableflip.dev/momentchen/pkg/commands/options"
	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	wo := &options.WatchOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"today", "list"},
		Short:   "Show today's moments",
		Example: `
momentchen get
momentchen get --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := credstore.Load(nil)
			if err != nil {
				return err
			}
			g := get.Get{
				ShowID: io.ShowID,
				Watch:  wo.Watch,
				Svc:    app.New(creds),
			}
			err = g.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddWatchArgs(cmd, wo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
