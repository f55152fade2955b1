// Package progress reports how far a static export has got.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Update per file written. Start is told how many
// files and bytes the export will write in total.
type Reporter interface {
	Start(files int, bytes int64)
	Update(current int, file string, bytes int64)
	Finish()
}

// NewReporter returns a LineReporter on stderr if the CI environment
// variable is set, otherwise a TerminalReporter.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{Out: os.Stderr}
	}
	return &TerminalReporter{Out: os.Stderr}
}

// TerminalReporter draws a byte-based progress bar.
type TerminalReporter struct {
	Out io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(files int, bytes int64) {
	out := r.Out
	if out == nil {
		out = os.Stderr
	}
	r.bar = progressbar.NewOptions64(bytes,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(fmt.Sprintf("Exporting %d files", files)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, file string, bytes int64) {
	if r.bar != nil {
		r.bar.Describe(file)
		_ = r.bar.Add64(bytes)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints one line per file and a closing total, suitable for
// CI logs.
type LineReporter struct {
	Out io.Writer

	total   int
	done    int
	written int64
}

func (r *LineReporter) Start(files int, bytes int64) {
	r.total, r.done, r.written = files, 0, 0
	fmt.Fprintf(r.Out, "Exporting %d files (%d bytes)\n", files, bytes)
}

func (r *LineReporter) Update(current int, file string, bytes int64) {
	r.done = current
	r.written += bytes
	fmt.Fprintf(r.Out, "[%d/%d] %s (%d bytes)\n", current, r.total, file, bytes)
}

func (r *LineReporter) Finish() {
	fmt.Fprintf(r.Out, "Export complete: %d files, %d bytes\n", r.done, r.written)
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int, int64) {}
func (Nop) Update(int, string, int64) {}
func (Nop) Finish() {}
