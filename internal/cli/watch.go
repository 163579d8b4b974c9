package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/tabgen/internal/app"
	"github.com/MrSnakeDoc/tabgen/internal/config"
)

func newWatchCmd(cfg *config.Config, streams app.IO) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate pages whenever the config, template or stylesheet changes",
		Long: `Generate every page from --config, overwriting existing ones, then keep
watching the config file, the template and the stylesheet. Any change
regenerates all pages. Stop with Ctrl+C.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cfg, streams, func(a *app.App) error {
				return a.Watch(cmd.Context())
			})
		},
	}
}
