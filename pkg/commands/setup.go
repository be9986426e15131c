package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/momentchen/pkg/commands/options"
	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/runner/setup"
)

func addSetup(topLevel *cobra.Command) {
	so := &options.SetupOptions{}

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Connect a Notion workspace",
		Long: "Collects the integration token and the ids of the moments, projects and\n" +
			"life areas databases, validates the token, and stores everything locally.",
		Example: `
momentchen setup
momentchen setup --token secret_... --moments <id> --projects <id> --life-areas <id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := credstore.Load(nil)
			if err != nil {
				return err
			}
			s := setup.Setup{
				Token:     so.Token,
				Moments:   so.Moments,
				Projects:  so.Projects,
				LifeAreas: so.LifeAreas,
				Creds:     creds,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSetupArgs(cmd, so)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
