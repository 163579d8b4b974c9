package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/term"

	"github.com/MrSnakeDoc/tabgen/internal/config"
	"github.com/MrSnakeDoc/tabgen/internal/domain"
	"github.com/MrSnakeDoc/tabgen/internal/logger"
	"github.com/MrSnakeDoc/tabgen/internal/page"
	"github.com/MrSnakeDoc/tabgen/internal/prompt"
	"github.com/MrSnakeDoc/tabgen/internal/report"
	"github.com/MrSnakeDoc/tabgen/internal/scheduler"
	"github.com/MrSnakeDoc/tabgen/internal/sources/tabs"
)

type App struct {
	cfg       *config.Config
	logger    logger.Logger
	generator *page.Generator
	reporter  *report.Reporter
	prompter  *prompt.Prompter
}

// IO bundles the streams the app talks to.
type IO struct {
	In  io.Reader
	Out io.Writer
}

// StdIO returns the process streams.
func StdIO() IO {
	return IO{In: os.Stdin, Out: os.Stdout}
}

func New(cfg *config.Config, log logger.Logger, streams IO) *App {
	return &App{
		cfg:    cfg,
		logger: log,
		generator: page.NewGenerator(page.Options{
			TemplateFile: cfg.TemplateFile,
			StyleFile:    cfg.StyleFile,
			AssetsDir:    cfg.AssetsDir,
		}, log),
		reporter: report.New(streams.Out, isTerminal(streams.Out)),
		prompter: prompt.New(streams.In, streams.Out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run generates from the config file when one is set, otherwise asks interactively.
func (a *App) Run() error {
	if a.cfg.ConfigFile != "" {
		if err := a.FromConfig(a.cfg.ConfigFile, a.cfg.OutputDir, a.cfg.Force); err != nil {
			return err
		}
		if a.cfg.Summary {
			a.reporter.Summary()
		}
		return nil
	}
	return a.Interactive(a.cfg.OutputDir, a.cfg.Force)
}

// FromConfig generates one page per valid entry of the YAML config at path.
// Invalid entries are reported and skipped; the rest of the batch continues.
func (a *App) FromConfig(path, outputDir string, force bool) error {
	loader := tabs.NewLoader(path)
	raw, err := loader.Load()
	if err != nil {
		return err
	}

	mapped := tabs.NewMapper().MapEntries(raw)
	a.logger.Info("loaded tabs config",
		logger.String("file", loader.Path()),
		logger.Int("entries", len(mapped)),
		logger.Int("valid", len(tabs.ValidEntries(mapped))))

	for _, m := range mapped {
		if m.Rejected != nil {
			a.reporter.InvalidEntry(m.Rejected.Title, m.Rejected.Category)
			continue
		}
		res, err := a.generator.Generate(m.Entry.Title, m.Entry.Category, outputDir, force)
		if err != nil {
			return fmt.Errorf("generate '%s': %w", m.Entry.Title, err)
		}
		a.reporter.Result(res)
	}
	return nil
}

// Interactive asks for one title and category and generates that page.
// An invalid category is reported and the run ends without error.
func (a *App) Interactive(outputDir string, force bool) error {
	ans, err := a.prompter.AskEntry()
	if err != nil {
		return err
	}

	category, err := domain.ParseCategory(ans.Category)
	if err != nil {
		a.reporter.InvalidCategory(ans.Category)
		return nil
	}

	res, err := a.generator.Generate(ans.Title, category, outputDir, force)
	if err != nil {
		return err
	}
	a.reporter.Result(res)
	return nil
}

// Watch regenerates every page from the config whenever the config, the
// template or the stylesheet changes, until interrupted.
func (a *App) Watch(ctx context.Context) error {
	if a.cfg.ConfigFile == "" {
		return errors.New("watch requires --config")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Failures after the first build are printed here; the first one is
	// returned to the caller instead.
	var watching atomic.Bool
	rebuild := func(context.Context) error {
		a.reporter.Reset()
		if err := a.FromConfig(a.cfg.ConfigFile, a.cfg.OutputDir, true); err != nil {
			if watching.Load() {
				a.reporter.Failure(err)
			}
			return err
		}
		if a.cfg.Summary {
			a.reporter.Summary()
		}
		return nil
	}

	// SIGHUP forces a rebuild without touching any file.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	trigger := make(chan struct{}, 1)
	go forwardSignals(ctx, hup, trigger)

	fw, err := scheduler.NewFileWatcher(
		[]string{a.cfg.ConfigFile, a.cfg.TemplateFile, a.cfg.StyleFile},
		rebuild,
		a.logger,
		scheduler.DefaultDebounce,
		trigger,
	)
	if err != nil {
		return err
	}
	a.reporter.Info("👀 Watching %s for changes (Ctrl+C to stop, SIGHUP to rebuild)", a.cfg.ConfigFile)
	if err := fw.Start(ctx); err != nil {
		return err
	}
	watching.Store(true)

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Stopping watcher...")
		fw.Stop()
	case <-fw.Done():
	}
	<-fw.Done()

	a.logger.Info("✅ tabgen watch stopped cleanly")
	return nil
}

// forwardSignals turns each received signal into one pending trigger.
// Signals arriving while a trigger is already queued collapse into it.
func forwardSignals(ctx context.Context, sigs <-chan os.Signal, trigger chan<- struct{}) {
	for {
		select {
		case <-sigs:
			select {
			case trigger <- struct{}{}:
			default:
			}
		case <-ctx.Done():
			return
		}
	}
}
