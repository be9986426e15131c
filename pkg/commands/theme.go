package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/runner/themecmd"
)

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme [light|dark|system]",
		Short:     "Show or set the appearance preference",
		ValidArgs: []string{"light", "dark", "system"},
		Args:      cobra.MaximumNArgs(1),
		Example: `
momentchen theme
momentchen theme dark
momentchen theme system
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := credstore.Load(nil)
			if err != nil {
				return err
			}
			t := themecmd.ThemeCmd{Store: creds}
			if len(args) > 0 {
				t.Value = args[0]
			}
			err = t.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
