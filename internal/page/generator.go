package page

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MrSnakeDoc/tabgen/internal/domain"
	"github.com/MrSnakeDoc/tabgen/internal/logger"
	"github.com/MrSnakeDoc/tabgen/internal/utils"
)

// StyleFileName is the name of the stylesheet inside every output directory.
const StyleFileName = "style.css"

// Template placeholders, replaced literally.
const (
	TitlePlaceholder    = "{{ TITLE }}"
	CategoryPlaceholder = "{{ CATEGORY }}"
	FaviconPlaceholder  = "{{ FAVICON }}"
)

// ErrTemplateNotFound is returned when the template file does not exist.
var ErrTemplateNotFound = errors.New("template file not found")

// Status tells what Generate did with one entry.
type Status int

const (
	StatusGenerated Status = iota
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusGenerated:
		return "generated"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result describes the outcome of one Generate call.
type Result struct {
	Entry  domain.Entry
	Path   string
	Status Status
}

// Options configures a Generator.
type Options struct {
	TemplateFile string
	StyleFile    string
	AssetsDir    string
}

// Generator renders tab pages from a template into an output directory.
type Generator struct {
	opts    Options
	logger  logger.Logger
	symlink func(oldname, newname string) error
}

// NewGenerator creates a generator for the given template and stylesheet.
func NewGenerator(opts Options, log logger.Logger) *Generator {
	return &Generator{
		opts:    opts,
		logger:  log,
		symlink: os.Symlink,
	}
}

// LoadTemplate reads the template file. It is re-read on every call.
func (g *Generator) LoadTemplate() (string, error) {
	data, err := os.ReadFile(g.opts.TemplateFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: '%s'", ErrTemplateNotFound, g.opts.TemplateFile)
		}
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(data), nil
}

// EnsureStyleLinked makes the stylesheet available as outputDir/style.css.
// An existing destination is left untouched. A symlink is preferred; if the
// OS refuses one, the stylesheet is copied instead.
func (g *Generator) EnsureStyleLinked(outputDir string) error {
	dest := filepath.Join(outputDir, StyleFileName)
	if _, err := os.Lstat(dest); err == nil {
		return nil
	}

	src, err := filepath.Abs(g.opts.StyleFile)
	if err != nil {
		return fmt.Errorf("failed to resolve stylesheet path: %w", err)
	}

	linkErr := g.symlink(src, dest)
	if linkErr == nil {
		g.logger.Debug("linked stylesheet",
			logger.String("src", src), logger.String("dest", dest))
		return nil
	}
	g.logger.Debug("symlink failed, copying stylesheet",
		logger.String("dest", dest), logger.Error(linkErr))

	if err := copyFile(src, dest); err != nil {
		return fmt.Errorf("failed to copy stylesheet: %w", err)
	}
	g.logger.Debug("copied stylesheet",
		logger.String("src", src), logger.String("dest", dest))
	return nil
}

// OutputPath returns where the page for title is written.
func OutputPath(outputDir, title string) string {
	return filepath.Join(outputDir, domain.SanitizeTitle(title)+".html")
}

// Render substitutes the placeholders into tmpl, without escaping.
// Replacement runs title, then category, then favicon, so a token carried
// in by the title is itself substituted by the later passes.
func Render(tmpl, title string, category domain.Category, favicon string) string {
	out := strings.ReplaceAll(tmpl, TitlePlaceholder, title)
	out = strings.ReplaceAll(out, CategoryPlaceholder, string(category))
	return strings.ReplaceAll(out, FaviconPlaceholder, favicon)
}

// Generate writes the page for one entry. An existing page is kept unless
// force is set; that case returns StatusSkipped and no error.
func (g *Generator) Generate(title string, category domain.Category, outputDir string, force bool) (Result, error) {
	res := Result{
		Entry: domain.Entry{Title: title, Category: category},
		Path:  OutputPath(outputDir, title),
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return res, fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := g.EnsureStyleLinked(outputDir); err != nil {
		return res, err
	}

	tmpl, err := g.LoadTemplate()
	if err != nil {
		return res, err
	}

	if _, err := os.Stat(res.Path); err == nil && !force {
		res.Status = StatusSkipped
		g.logger.Debug("page exists, skipping", logger.String("path", res.Path))
		return res, nil
	}

	favicon := domain.Favicon(g.opts.AssetsDir, category)
	content := Render(tmpl, title, category, favicon)
	if err := os.WriteFile(res.Path, []byte(content), 0o644); err != nil {
		return res, fmt.Errorf("failed to write page: %w", err)
	}

	res.Status = StatusGenerated
	g.logger.Debug("page written",
		logger.String("path", res.Path),
		logger.String("category", string(category)),
		logger.String("favicon", favicon))
	return res, nil
}

func copyFile(src, dest string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer utils.Close(in)

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
