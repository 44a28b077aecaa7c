// Package progress shows a terminal spinner while a child process runs with
// its output captured.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Indicator is started before a captured invocation and stopped after it.
type Indicator interface {
	Start(msg string)
	Stop()
}

// Spinner draws on stderr. It is inert when stderr is not a terminal or when
// running under CI.
type Spinner struct {
	s       *spinner.Spinner
	enabled bool
}

var _ Indicator = &Spinner{}

// New creates a spinner bound to stderr.
func New() *Spinner {
	return newSpinner(os.Stderr, isTerminal(os.Stderr) && os.Getenv("CI") != "true")
}

func newSpinner(w io.Writer, enabled bool) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Prefix = "  "
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s, enabled: enabled}
}

func (p *Spinner) Start(msg string) {
	if !p.enabled {
		return
	}
	p.s.Suffix = fmt.Sprintf(" %s", msg)
	p.s.Start()
}

func (p *Spinner) Stop() {
	if !p.enabled {
		return
	}
	p.s.Stop()
}

// Nop is an Indicator that does nothing.
type Nop struct{}

func (Nop) Start(string) {}
func (Nop) Stop()        {}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
