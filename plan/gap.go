package plan

import (
	"fmt"

	"github.com/Amnesia06/Generate-rows/field"
)

// gapEps absorbs float drift when a gap matches a run length exactly.
const gapEps = 1e-9

// applyExitGap converts the final gap meters of the headland output (the
// run immediately preceding the exit) from SOW to NAVIGATE, shrinking the
// adjacent sown run accordingly. A gap exactly equal to the final run
// consumes it whole with zero spillover.
//
// The conversion never crosses the corner/junction that starts the final
// run: a larger gap fails with ErrGapOverflow. A non-positive gap is an
// input defect and fails with field.ErrValidation.
func applyExitGap(segs []field.Segment, gap GapSpec) ([]field.Segment, error) {
	if gap.Size <= 0 {
		return nil, fmt.Errorf("%w: gap size must be positive", field.ErrValidation)
	}
	last := len(segs) - 1
	if last < 0 || segs[last].Action != field.Sow {
		return nil, ErrPlanning
	}
	s := segs[last]
	switch {
	case gap.Size > s.Dist+gapEps:
		return nil, ErrGapOverflow
	case gap.Size >= s.Dist-gapEps:
		s.Label = "ExitGap"
		s.Action = field.Navigate
		s.Farm = field.NavigationUnsown
		segs[last] = s
		return segs, nil
	}

	// Proportional split at gap meters before the exit.
	t := (s.Dist - gap.Size) / s.Dist
	mid := field.Point{
		X: s.From.X + (s.To.X-s.From.X)*t,
		Y: s.From.Y + (s.To.Y-s.From.Y)*t,
	}
	sown := s
	sown.To = mid
	sown.Dist = s.Dist - gap.Size
	buffer := field.Segment{
		From:   mid,
		To:     s.To,
		Label:  "ExitGap",
		Action: field.Navigate,
		Farm:   field.NavigationUnsown,
		Dist:   gap.Size,
	}
	return append(segs[:last:last], sown, buffer), nil
}
