package plan

import (
	"fmt"

	"github.com/Amnesia06/Generate-rows/field"
)

// sweepPlan visits every interior lane exactly once, end to end, in a
// serpentine pattern with no backtracking.
//
// Interior lanes are lane_x ∈ [1, XMax-1]; the interior row span is
// lane_y ∈ [1, YMax-1]. Lanes are taken in increasing order; odd-indexed
// lanes run low→high in lane_y, even-indexed ones high→low, so consecutive
// lanes always connect at the current row extreme via a short V-Turn.
//
// Returns the ordered segments and the terminal waypoint
// (XMax-1, last row extreme).
//
// Complexity: O(XMax) segments, O(XMax·YMax) covered lane cells.
func sweepPlan(spec field.GridSpec) ([]field.Segment, field.Waypoint) {
	lowY, highY := 1, spec.YMax-1
	segs := make([]field.Segment, 0, 2*(spec.XMax-1))
	cur := field.Waypoint{LaneX: 1, LaneY: lowY}
	for x := 1; x <= spec.XMax-1; x++ {
		endY := highY
		if x%2 == 0 {
			endY = lowY
		}
		to := field.Waypoint{LaneX: x, LaneY: endY}
		segs = append(segs, spec.Segment(cur, to,
			fmt.Sprintf("VRow%d", x), field.Sow, field.InnerVerticalFarming))
		cur = to
		if x < spec.XMax-1 {
			next := field.Waypoint{LaneX: x + 1, LaneY: endY}
			segs = append(segs, spec.Segment(cur, next,
				"V-Turn", field.Navigate, field.NavigationUnsown))
			cur = next
		}
	}
	return segs, cur
}
