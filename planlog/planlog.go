package planlog

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/Amnesia06/Generate-rows/field"
)

// Record is one mission-log row. All fields except Timestamp come straight
// from the segment; the logger assigns Timestamp at render time.
type Record struct {
	Timestamp time.Time
	Step      int
	Label     string
	From, To  field.Point
	SegDist   float64
	SownDist  float64
	Action    field.Action
	Farm      field.FarmType
}

// Records flattens a path into timestamped log rows, one per segment, in
// path order.
func Records(p field.Path, clk Clock) []Record {
	out := make([]Record, 0, p.Len())
	for _, s := range p.Segments() {
		out = append(out, Record{
			Timestamp: clk.Now(),
			Step:      s.Step,
			Label:     s.Label,
			From:      s.From,
			To:        s.To,
			SegDist:   s.Dist,
			SownDist:  s.SownAccum,
			Action:    s.Action,
			Farm:      s.Farm,
		})
	}
	return out
}

// Logger writes mission logs as a colored table.
type Logger struct {
	w   io.Writer
	clk Clock

	header *color.Color
	sow    *color.Color
	nav    *color.Color
	dim    *color.Color
}

// New creates a Logger writing to w with timestamps from clk. A nil clk
// falls back to the system clock.
func New(w io.Writer, clk Clock) *Logger {
	if clk == nil {
		clk = SystemClock{}
	}
	return &Logger{
		w:      w,
		clk:    clk,
		header: color.New(color.FgCyan, color.Bold),
		sow:    color.New(color.FgGreen),
		nav:    color.New(color.FgYellow),
		dim:    color.New(color.FgHiBlack),
	}
}

// WritePath renders the full per-segment table for p.
func (l *Logger) WritePath(p field.Path) error {
	if _, err := l.header.Fprintf(l.w, "%-20s %-5s %-8s %-16s %-16s %9s %9s %-9s %s\n",
		"Timestamp", "Step", "Label", "From (m)", "To (m)", "Dist (m)", "Sown (m)", "Action", "FarmType"); err != nil {
		return err
	}
	for _, rec := range Records(p, l.clk) {
		line := l.sow
		if rec.Action == field.Navigate {
			line = l.nav
		}
		if _, err := line.Fprintf(l.w, "%-20s %-5d %-8s %-16s %-16s %9.1f %9.1f %-9s %s\n",
			rec.Timestamp.UTC().Format(time.RFC3339),
			rec.Step,
			rec.Label,
			rec.From.String(),
			rec.To.String(),
			rec.SegDist,
			rec.SownDist,
			rec.Action.String(),
			rec.Farm.String(),
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary renders coverage totals and the mission end point.
func (l *Logger) WriteSummary(p field.Path) error {
	end := p.End()
	_, err := l.dim.Fprintf(l.w,
		"segments: %d | traveled: %.1f m | sown: %.1f m | unsown travel: %.1f m | end: %s\n",
		p.Len(), p.TotalDist(), p.TotalSown(), p.TotalDist()-p.TotalSown(), end.String())
	return err
}

// Fprint writes the table and summary in one call.
func (l *Logger) Fprint(p field.Path) error {
	if err := l.WritePath(p); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(l.w); err != nil {
		return err
	}
	return l.WriteSummary(p)
}
