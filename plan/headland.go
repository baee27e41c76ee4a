package plan

import (
	"github.com/Amnesia06/Generate-rows/field"
)

// headlandPlan generates the perimeter retrace: the rover steps from the
// sweep terminal onto the ring (H-Turn), travels the ring to the exit
// without sowing (those cells are sown on the lap that follows, so early
// passes stay unsown) and then sows one full lap that ends back at the
// exit. Every headland cell is sown exactly once; corners are attributed to
// the side being completed.
//
// The lap rotation is the one with the shorter unsown approach arc (fewer
// lane-steps from the entry adjacent to the terminal); a tie prefers the
// direction that reaches the exit's side first, and a residual tie resolves
// clockwise.
//
// Returns ErrPlanning when the terminal is not the last interior lane
// adjacent to the right headland, an invariant breach between the sweep
// and headland stages.
//
// Complexity: O(XMax + YMax) time and memory.
func headlandPlan(spec field.GridSpec, terminal field.Waypoint, exit ExitSpec, exitWp field.Waypoint) ([]field.Segment, error) {
	if terminal.LaneX != spec.XMax-1 || terminal.LaneY < 1 || terminal.LaneY > spec.YMax-1 {
		return nil, ErrPlanning
	}
	r := newRing(spec)

	entry := field.Waypoint{LaneX: spec.XMax, LaneY: terminal.LaneY}
	ei, ok := r.indexOf(entry)
	if !ok {
		return nil, ErrPlanning
	}
	xi, ok := r.indexOf(exitWp)
	if !ok {
		return nil, ErrPlanning
	}

	dir := chooseRotation(r, ei, xi, exit)

	segs := make([]field.Segment, 0, 12)
	// Step off the last interior lane onto the ring.
	segs = append(segs, spec.Segment(terminal, entry,
		"H-Turn", field.Navigate, field.NavigationUnsown))

	// Unsown approach along the ring to the exit.
	if ei != xi {
		turn := func(a, b field.Waypoint) string { return "H-Turn" }
		segs = append(segs, emitRuns(spec, r.walk(ei, xi, dir),
			field.Navigate, field.NavigationUnsown, turn)...)
	}

	// One full sowing lap, ending back at the exit.
	segs = append(segs, emitRuns(spec, r.lap(xi, dir),
		field.Sow, field.HeadlandFarming, headlandLabel)...)

	return segs, nil
}

// chooseRotation picks the lap direction per the tie-break policy described
// on headlandPlan.
func chooseRotation(r *ring, ei, xi int, exit ExitSpec) rotation {
	ccwSteps := r.arcSteps(ei, xi, ccw)
	cwSteps := r.arcSteps(ei, xi, cw)
	if ccwSteps < cwSteps {
		return ccw
	}
	if cwSteps < ccwSteps {
		return cw
	}
	if firstSideHit(r, ei, ccw, exit.sides()) < firstSideHit(r, ei, cw, exit.sides()) {
		return ccw
	}
	return cw
}

// firstSideHit counts the steps from index i, walking dir, until a node on
// one of the given sides is reached.
func firstSideHit(r *ring, i int, dir rotation, sides []Side) int {
	for t := 0; t < r.size(); t++ {
		w := r.at(i + int(dir)*t)
		for _, s := range sides {
			if onSide(r.spec, w, s) {
				return t
			}
		}
	}
	return r.size()
}
