package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/momentchen/pkg/app"
	"tableflip.dev/momentchen/pkg/commands/options"
	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	mo := &options.MomentOptions{}

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Log a moment",
		Example: `
momentchen add fixed the leaky faucet
momentchen add standup ran long --type Arbeit --project "Website Relaunch"
momentchen add morning run --life-area Gesundheit --at 07:30
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := credstore.Load(nil)
			if err != nil {
				return err
			}
			a := add.Add{
				Description: strings.Join(args, " "),
				Type:        mo.Type,
				Project:     mo.Project,
				LifeArea:    mo.LifeArea,
				At:          mo.At,
				Svc:         app.New(creds),
			}
			err = a.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMomentArgs(cmd, mo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
