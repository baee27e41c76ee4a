package plan

import (
	"fmt"

	"github.com/Amnesia06/Generate-rows/field"
)

// rotation is a traversal direction around the headland ring.
type rotation int

const (
	// ccw walks bottom → right → top → left.
	ccw rotation = 1
	// cw walks bottom → left → top → right.
	cw rotation = -1
)

// ring enumerates the perimeter lane cells as a closed loop, in
// counterclockwise order starting at the bottom-left corner. It is the
// geometric backbone of the headland retrace: arcs, laps, and run emission
// all operate on ring indices.
type ring struct {
	spec  field.GridSpec
	nodes []field.Waypoint
	index map[field.Waypoint]int
}

// newRing builds the perimeter loop for the given grid.
// Node count is 2·XMax + 2·YMax; construction is O(XMax + YMax).
func newRing(spec field.GridSpec) *ring {
	n := 2*spec.XMax + 2*spec.YMax
	r := &ring{
		spec:  spec,
		nodes: make([]field.Waypoint, 0, n),
		index: make(map[field.Waypoint]int, n),
	}
	// Bottom row, left to right, including both corners.
	for x := 0; x <= spec.XMax; x++ {
		r.push(field.Waypoint{LaneX: x, LaneY: 0})
	}
	// Right lane upward, excluding the shared bottom-right corner.
	for y := 1; y <= spec.YMax; y++ {
		r.push(field.Waypoint{LaneX: spec.XMax, LaneY: y})
	}
	// Top row, right to left, excluding the shared top-right corner.
	for x := spec.XMax - 1; x >= 0; x-- {
		r.push(field.Waypoint{LaneX: x, LaneY: spec.YMax})
	}
	// Left lane downward, excluding both shared corners.
	for y := spec.YMax - 1; y >= 1; y-- {
		r.push(field.Waypoint{LaneX: 0, LaneY: y})
	}
	return r
}

func (r *ring) push(w field.Waypoint) {
	r.index[w] = len(r.nodes)
	r.nodes = append(r.nodes, w)
}

// size returns the node count of the loop.
func (r *ring) size() int { return len(r.nodes) }

// at returns the node at index i, wrapping in both directions.
func (r *ring) at(i int) field.Waypoint {
	n := len(r.nodes)
	return r.nodes[((i%n)+n)%n]
}

// indexOf reports the ring index of w, if w lies on the perimeter.
func (r *ring) indexOf(w field.Waypoint) (int, bool) {
	i, ok := r.index[w]
	return i, ok
}

// arcSteps counts the lane-steps from i to j walking in direction dir.
// Zero when i == j.
func (r *ring) arcSteps(i, j int, dir rotation) int {
	n := len(r.nodes)
	d := (j - i) * int(dir)
	return ((d % n) + n) % n
}

// walk returns the nodes from i to j inclusive, walking in direction dir.
func (r *ring) walk(i, j int, dir rotation) []field.Waypoint {
	steps := r.arcSteps(i, j, dir)
	out := make([]field.Waypoint, 0, steps+1)
	for t := 0; t <= steps; t++ {
		out = append(out, r.at(i+int(dir)*t))
	}
	return out
}

// lap returns the full closed loop from i back to i (size+1 nodes) in
// direction dir.
func (r *ring) lap(i int, dir rotation) []field.Waypoint {
	n := len(r.nodes)
	out := make([]field.Waypoint, 0, n+1)
	for t := 0; t <= n; t++ {
		out = append(out, r.at(i+int(dir)*t))
	}
	return out
}

// onSide reports whether w lies on boundary side s of the grid.
func onSide(spec field.GridSpec, w field.Waypoint, s Side) bool {
	switch s {
	case SideBottom:
		return w.LaneY == 0
	case SideTop:
		return w.LaneY == spec.YMax
	case SideLeft:
		return w.LaneX == 0
	default:
		return w.LaneX == spec.XMax
	}
}

// headlandLabel names a perimeter run by the lane it covers: HRow{y} for
// horizontal runs, HCol{x} for vertical ones.
func headlandLabel(a, b field.Waypoint) string {
	if a.LaneY == b.LaneY {
		return fmt.Sprintf("HRow%d", a.LaneY)
	}
	return fmt.Sprintf("HCol%d", a.LaneX)
}

// emitRuns collapses a node walk into maximal axis-aligned segments. A run
// ends where the walk changes direction, so a corner cell is attributed to
// the run that completes at it.
func emitRuns(spec field.GridSpec, nodes []field.Waypoint, act field.Action, farm field.FarmType, label func(a, b field.Waypoint) string) []field.Segment {
	if len(nodes) < 2 {
		return nil
	}
	var segs []field.Segment
	start := 0
	dx, dy := stepDir(nodes[0], nodes[1])
	for i := 2; i < len(nodes); i++ {
		ndx, ndy := stepDir(nodes[i-1], nodes[i])
		if ndx == dx && ndy == dy {
			continue
		}
		segs = append(segs, spec.Segment(nodes[start], nodes[i-1], label(nodes[start], nodes[i-1]), act, farm))
		start, dx, dy = i-1, ndx, ndy
	}
	segs = append(segs, spec.Segment(nodes[start], nodes[len(nodes)-1], label(nodes[start], nodes[len(nodes)-1]), act, farm))
	return segs
}

// stepDir returns the unit lane direction from a to b.
func stepDir(a, b field.Waypoint) (int, int) {
	return sign(b.LaneX - a.LaneX), sign(b.LaneY - a.LaneY)
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
