package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/MrSnakeDoc/tabgen/internal/page"
)

// Reporter prints the human-readable status lines of a run.
type Reporter struct {
	out     io.Writer
	ok      *color.Color
	warn    *color.Color
	fail    *color.Color
	results []page.Result
}

// New creates a reporter writing to out. Colours are only emitted when
// colored is true and NO_COLOR is not set.
func New(out io.Writer, colored bool) *Reporter {
	r := &Reporter{
		out:  out,
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{r.ok, r.warn, r.fail} {
		if colored && !color.NoColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Result reports the outcome of one generated or skipped page.
func (r *Reporter) Result(res page.Result) {
	r.results = append(r.results, res)
	switch res.Status {
	case page.StatusGenerated:
		r.ok.Fprintf(r.out, "✅ Generated: %s\n", res.Path)
	case page.StatusSkipped:
		r.warn.Fprintf(r.out, "⚠️ Skipping '%s': %s already exists (use --force to overwrite)\n",
			res.Entry.Title, res.Path)
	}
}

// InvalidEntry reports a config entry dropped for its category.
func (r *Reporter) InvalidEntry(title, category string) {
	r.warn.Fprintf(r.out, "⚠️ Skipping '%s': invalid category '%s'\n", title, category)
}

// InvalidCategory reports a rejected interactive answer.
func (r *Reporter) InvalidCategory(category string) {
	r.warn.Fprintf(r.out, "⚠️ Invalid category '%s'\n", category)
}

// Info prints a plain informational line.
func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Failure prints a fatal error line.
func (r *Reporter) Failure(err error) {
	r.fail.Fprintf(r.out, "❌ %v\n", err)
}

// Results returns everything reported through Result so far.
func (r *Reporter) Results() []page.Result {
	return r.results
}

// Reset forgets collected results, e.g. between watch rebuilds.
func (r *Reporter) Reset() {
	r.results = nil
}

// Summary renders the collected results as a table.
func (r *Reporter) Summary() {
	if len(r.results) == 0 {
		return
	}
	tbl := table.NewWriter()
	tbl.SetOutputMirror(r.out)
	tbl.AppendHeader(table.Row{"Title", "Category", "Status", "Path"})
	generated, skipped := 0, 0
	for _, res := range r.results {
		tbl.AppendRow(table.Row{res.Entry.Title, res.Entry.Category, res.Status, res.Path})
		if res.Status == page.StatusGenerated {
			generated++
		} else {
			skipped++
		}
	}
	tbl.AppendFooter(table.Row{"", "", fmt.Sprintf("%d generated", generated), fmt.Sprintf("%d skipped", skipped)})
	tbl.Render()
}
