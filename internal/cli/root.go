package cli

import (
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/tabgen/internal/app"
	"github.com/MrSnakeDoc/tabgen/internal/config"
	"github.com/MrSnakeDoc/tabgen/internal/logger"
	"github.com/MrSnakeDoc/tabgen/internal/version"
)

// NewRootCmd builds the command tree. Flag defaults come from cfg, which
// already carries the environment overrides.
func NewRootCmd(cfg *config.Config, streams app.IO) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tabgen",
		Short: "Generate browser tab pages",
		Long: `Generate static HTML tab pages from a template.

With --config, one page is written per entry of a YAML list of titles and
categories. Without it, a single page is generated from an interactive prompt.`,
		Version:       version.String(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cfg, streams, func(a *app.App) error {
				return a.Run()
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Path to YAML config file")
	flags.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "Output folder")
	flags.BoolVar(&cfg.Force, "force", cfg.Force, "Overwrite existing files")
	flags.BoolVar(&cfg.Summary, "summary", cfg.Summary, "Print a summary table after a config run")
	flags.StringVar(&cfg.TemplateFile, "template", cfg.TemplateFile, "Page template file")
	flags.StringVar(&cfg.StyleFile, "style", cfg.StyleFile, "Stylesheet linked into the output folder")
	flags.StringVar(&cfg.AssetsDir, "assets-dir", cfg.AssetsDir, "Directory prefix of favicon paths")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.BoolVar(&cfg.PrettyLog, "pretty-log", cfg.PrettyLog, "Human-friendly log output instead of JSON")

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetVersionTemplate("tabgen {{.Version}}\n")
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	cmd.AddCommand(newWatchCmd(cfg, streams), newVersionCmd())
	return cmd
}

// withApp validates the config, builds the app and flushes the logger afterwards.
func withApp(cfg *config.Config, streams app.IO, fn func(*app.App) error) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	log.Debug("configuration",
		logger.String("config", cfg.ConfigFile),
		logger.String("output_dir", cfg.OutputDir),
		logger.String("template", cfg.TemplateFile),
		logger.String("style", cfg.StyleFile),
		logger.Bool("force", cfg.Force))

	return fn(app.New(cfg, log, streams))
}
