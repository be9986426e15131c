package options

import "github.com/spf13/cobra"

// MomentOptions carry the optional fields of a new moment.
type MomentOptions struct {
	Type     string
	Project  string
	LifeArea string
	At       string
}

func AddMomentArgs(cmd *cobra.Command, mo *MomentOptions) {
	cmd.Flags().StringVarP(&mo.Type, "type", "t", "",
		"Moment type, one of the Typ options of the moments database. Defaults to the first option.")
	cmd.Flags().StringVarP(&mo.Project, "project", "p", "",
		"Link the moment to an active project, by title or id.")
	cmd.Flags().StringVarP(&mo.LifeArea, "life-area", "l", "",
		"Link the moment to an active life area, by title or id.")
	cmd.Flags().StringVar(&mo.At, "at", "",
		"Timestamp for the moment (15:04 today, or RFC3339). Defaults to now.")
}

// IDOptions
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, io *IDOptions) {
	cmd.Flags().BoolVar(&io.ShowID, "id", false,
		"Show remote record ids.")
}

// WatchOptions
type WatchOptions struct {
	Watch bool
}

func AddWatchArgs(cmd *cobra.Command, wo *WatchOptions) {
	cmd.Flags().BoolVarP(&wo.Watch, "watch", "w", false,
		"Keep re-polling and printing every 15 seconds.")
}
