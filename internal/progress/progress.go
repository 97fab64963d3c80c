// Package progress decouples the benchmark runner from its progress
// indicator. The runner only ever talks to the Sink interface; whether
// a live bar is attached has no influence on the measurements.
package progress

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Sink receives progress notifications from the benchmark runner. All
// calls are non-blocking from the runner's perspective.
type Sink interface {
	// Start begins a new phase with the given expected length.
	Start(total int64, message string)

	// Inc records one completed step.
	Inc()

	// SetTotal adjusts the expected length of the current phase.
	SetTotal(total int64)

	// SetMessage replaces the phase description.
	SetMessage(message string)

	// Finish ends the current phase and clears the indicator.
	Finish()
}

// Discard is a Sink that does nothing.
var Discard Sink = discard{}

type discard struct{}

func (discard) Start(int64, string) {}
func (discard) Inc()                {}
func (discard) SetTotal(int64)      {}
func (discard) SetMessage(string)   {}
func (discard) Finish()             {}

// NewBar returns a Sink rendering a live terminal progress bar on
// stderr, so it never mixes with exported results on stdout.
func NewBar() Sink {
	return &barSink{}
}

type barSink struct {
	bar *progressbar.ProgressBar
}

func (s *barSink) Start(total int64, message string) {
	s.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(message),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerPadding: "▒",
		}),
	)
}

func (s *barSink) Inc() {
	if s.bar != nil {
		_ = s.bar.Add(1)
	}
}

func (s *barSink) SetTotal(total int64) {
	if s.bar != nil {
		s.bar.ChangeMax64(total)
	}
}

func (s *barSink) SetMessage(message string) {
	if s.bar != nil {
		s.bar.Describe(message)
	}
}

func (s *barSink) Finish() {
	if s.bar != nil {
		_ = s.bar.Clear()
		s.bar = nil
	}
}
