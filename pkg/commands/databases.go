package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/momentchen/pkg/app"
	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/runner/databases"
)

func addDatabases(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "databases",
		Short: "List databases shared with the integration",
		Example: `
momentchen databases
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := credstore.Load(nil)
			if err != nil {
				return err
			}
			d := databases.Databases{Svc: app.New(creds)}
			err = d.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
