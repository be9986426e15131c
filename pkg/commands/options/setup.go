package options

import "github.com/spf13/cobra"

// SetupOptions pre-fill the setup wizard; anything left empty is prompted.
type SetupOptions struct {
	Token     string
	Moments   string
	Projects  string
	LifeAreas string
}

func AddSetupArgs(cmd *cobra.Command, so *SetupOptions) {
	cmd.Flags().StringVar(&so.Token, "token", "",
		"Notion integration token.")
	cmd.Flags().StringVar(&so.Moments, "moments", "",
		"Id of the moments database.")
	cmd.Flags().StringVar(&so.Projects, "projects", "",
		"Id of the projects database.")
	cmd.Flags().StringVar(&so.LifeAreas, "life-areas", "",
		"Id of the life areas database.")
}
