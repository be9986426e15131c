package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/momentchen/pkg/app"
	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
momentchen ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := credstore.Load(nil)
			if err != nil {
				return err
			}
			i := ui.UI{Svc: app.New(creds), Store: creds}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
