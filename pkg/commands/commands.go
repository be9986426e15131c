package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/momentchen/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "momentchen",
		Short: base.Wrap80("Log tiny time-stamped moments into your Notion workspace."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSetup(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addDatabases(topLevel)
	addTheme(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
