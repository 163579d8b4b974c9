package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MrSnakeDoc/tabgen/internal/logger"
)

type Config struct {
	ConfigFile string // path to the tabs YAML file (empty => interactive mode)
	OutputDir  string // where pages are written (default: docs)
	Force      bool   // overwrite existing pages
	Summary    bool   // print a summary table after a config run

	TemplateFile string // page template with {{ TITLE }}, {{ CATEGORY }}, {{ FAVICON }}
	StyleFile    string // canonical stylesheet linked into OutputDir
	AssetsDir    string // prefix of favicon paths written into pages

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)
}

// Load returns env-driven defaults. CLI flags are applied on top by the caller.
func Load() *Config {
	return &Config{
		OutputDir: getenv("TABGEN_OUTPUT_DIR", "docs"),
		Force:     mustBool("TABGEN_FORCE", false),

		TemplateFile: getenv("TABGEN_TEMPLATE_FILE", "template.html"),
		StyleFile:    getenv("TABGEN_STYLE_FILE", "style.css"),
		AssetsDir:    strings.TrimRight(getenv("TABGEN_ASSETS_DIR", "assets"), "/"),

		LogLevel:  getenv("TABGEN_LOG_LEVEL", "warn"),
		PrettyLog: mustBool("TABGEN_PRETTY_LOG", true),
	}
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output dir must not be empty"))
	}
	if c.TemplateFile == "" {
		errs = append(errs, errors.New("template file must not be empty"))
	}
	if c.StyleFile == "" {
		errs = append(errs, errors.New("style file must not be empty"))
	}
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
