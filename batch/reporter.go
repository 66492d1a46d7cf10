package batch

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const ruleWidth = 60

// Reporter prints per-file progress lines and the final tally
type Reporter struct {
	w       io.Writer
	success *color.Color
	warning *color.Color
	failure *color.Color
}

// NewReporter creates a console reporter writing to w, stdout by default
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		w:       w,
		success: color.New(color.FgGreen),
		warning: color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
}

func (r *Reporter) rule() {
	_, _ = fmt.Fprintln(r.w, strings.Repeat("=", ruleWidth))
}

// Banner prints the run title framed by rules
func (r *Reporter) Banner(title string) {
	r.rule()
	_, _ = fmt.Fprintln(r.w, title)
	r.rule()
}

// Processing announces a file
func (r *Reporter) Processing(location string) {
	_, _ = fmt.Fprintf(r.w, "Processing: %s\n", location)
}

// Step reports an applied edit
func (r *Reporter) Step(format string, args ...interface{}) {
	_, _ = r.success.Fprintf(r.w, "  ✓ "+format+"\n", args...)
}

// Updated reports a changed file
func (r *Reporter) Updated() {
	_, _ = r.success.Fprintln(r.w, "  ✅ Updated successfully")
}

// Warn reports a skipped file
func (r *Reporter) Warn(message string) {
	_, _ = r.warning.Fprintf(r.w, "  ⚠️  %s\n", message)
}

// Error reports a failed file
func (r *Reporter) Error(err error) {
	_, _ = r.failure.Fprintf(r.w, "  ❌ Error: %v\n", err)
}

// Done ends a file section
func (r *Reporter) Done() {
	_, _ = fmt.Fprintln(r.w)
}

// Summary prints the written/total tally
func (r *Reporter) Summary(summary *Summary) {
	r.rule()
	_, _ = fmt.Fprintf(r.w, "Summary: %d/%d files updated\n", summary.Written, summary.Total)
	r.rule()
}
