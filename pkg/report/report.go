// Package report collects the outcome of each requested step and renders a
// short summary once the run is over.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Step is one dispatched flag.
type Step struct {
	Name     string
	Status   Status
	Duration time.Duration
	Err      error
}

// Report is an ordered list of steps. The zero value is ready to use.
type Report struct {
	RunID string
	Steps []Step

	KeyStyle    lipgloss.Style
	ValueStyle  lipgloss.Style
	BorderStyle lipgloss.Style
}

// New returns a report with the default styles.
func New(runID string) *Report {
	return &Report{
		RunID:       runID,
		KeyStyle:    lipgloss.NewStyle().Bold(true),
		ValueStyle:  lipgloss.NewStyle(),
		BorderStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Track runs fn and records it under name.
func (r *Report) Track(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	step := Step{Name: name, Status: StatusOK, Duration: time.Since(start), Err: err}
	if err != nil {
		step.Status = StatusFailed
	}
	r.Steps = append(r.Steps, step)
	return err
}

// Skip records a requested step that was not run.
func (r *Report) Skip(name string) {
	r.Steps = append(r.Steps, Step{Name: name, Status: StatusSkipped})
}

// Failed reports whether any recorded step failed.
func (r *Report) Failed() bool {
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			return true
		}
	}
	return false
}

// View renders the steps as a key/value grid in a bordered box.
func (r *Report) View() string {
	var b strings.Builder
	if r.RunID != "" {
		fmt.Fprintf(&b, "%s  %s\n", r.KeyStyle.Width(16).Render("run"), r.ValueStyle.Render(r.RunID))
	}
	for _, s := range r.Steps {
		value := string(s.Status)
		if s.Status != StatusSkipped {
			value = fmt.Sprintf("%s (%s)", s.Status, s.Duration.Round(time.Millisecond))
		}
		fmt.Fprintf(&b, "%s  %s\n", r.KeyStyle.Width(16).Render(s.Name), r.ValueStyle.Render(value))
	}
	return r.BorderStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

// Write prints the summary to w. Nothing is written for an empty report.
func (r *Report) Write(w io.Writer) {
	if len(r.Steps) == 0 {
		return
	}
	fmt.Fprintln(w, r.View())
}
