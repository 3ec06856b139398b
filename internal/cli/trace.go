// Package cli carries helpers shared by the demo subcommands.
package cli

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/mrsc-framework/mrsc/pkg/mrsc"
)

// NewLogger returns a console logger for the demos. Verbose lowers the
// level so per-step tracing becomes visible.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.TraceLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// ZerologTracer reports search progress through a zerolog logger.
type ZerologTracer[C, D, E any] struct {
	Log zerolog.Logger
}

func (t ZerologTracer[C, D, E]) Trace(p mrsc.SearchPosition[C, D, E]) {
	g := p.Graph()
	t.Log.Trace().
		Stringer("path", g.Active().Path()).
		Int("incomplete", len(g.IncompleteLeaves())).
		Int("pending", p.Pending()).
		Msg("driving")
}
