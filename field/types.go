// Package field defines core value types and sentinel errors for the
// Generate-rows planning pipeline.
package field

import (
	"errors"
	"fmt"
)

// ErrValidation indicates field/rover geometry that cannot form a lane grid.
var ErrValidation = errors.New("field: invalid field or rover geometry")

// Action classifies what the rover does while traversing a segment.
type Action int

const (
	// Sow means the seeding mechanism is engaged along the segment.
	Sow Action = iota
	// Navigate means the rover only repositions; nothing is sown.
	Navigate
)

// String returns the log-facing name of the action.
func (a Action) String() string {
	if a == Sow {
		return "SOW"
	}
	return "NAVIGATE"
}

// FarmType classifies the coverage role of a segment.
type FarmType int

const (
	// InnerVerticalFarming marks a serpentine pass over an interior lane.
	InnerVerticalFarming FarmType = iota
	// HeadlandFarming marks a sowing pass over a perimeter lane or row.
	HeadlandFarming
	// NavigationUnsown marks repositioning moves and the exit buffer.
	NavigationUnsown
)

// String returns the log-facing name of the farm type.
func (f FarmType) String() string {
	switch f {
	case InnerVerticalFarming:
		return "INNER_VERTICAL_FARMING"
	case HeadlandFarming:
		return "HEADLAND_FARMING"
	default:
		return "NAVIGATION_UNSOWN"
	}
}

// Waypoint addresses the center of one lane cell by integer lane indices:
// LaneX ∈ [0, XMax], LaneY ∈ [0, YMax]. Waypoints are value objects with no
// identity beyond their coordinates.
type Waypoint struct {
	LaneX, LaneY int
}

// Point is the meter-space projection of a position in the field. Segment
// endpoints are points rather than waypoints because the exit gap may split
// a segment at an arbitrary meter offset that does not land on a lane center.
type Point struct {
	X, Y float64
}

// String formats the point the way the mission log prints positions.
func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Segment is one ordered, axis-aligned move of the rover. Segments are
// axis-aligned by construction, so the Manhattan and Euclidean lengths
// coincide in Dist. Step and SownAccum are zero until the assembler fixes
// the segment's position in the final path.
type Segment struct {
	From, To Point
	Label    string
	Action   Action
	Farm     FarmType
	// Dist is the segment length in meters.
	Dist float64
	// Step is the 1-based index in the assembled path.
	Step int
	// SownAccum is the cumulative sown distance up to and including this
	// segment.
	SownAccum float64
}

// Path is the immutable ordered sequence of segments produced by one
// planning run. Consumers (logger, visualizer) only read it.
type Path struct {
	segs []Segment
}

// NewPath copies segs into an immutable Path.
func NewPath(segs []Segment) Path {
	out := make([]Segment, len(segs))
	copy(out, segs)
	return Path{segs: out}
}

// Len reports the number of segments.
func (p Path) Len() int { return len(p.segs) }

// At returns the i-th segment. Panics if i is out of range, mirroring slice
// indexing.
func (p Path) At(i int) Segment { return p.segs[i] }

// Segments returns a copy of the segment sequence, preserving immutability.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segs))
	copy(out, p.segs)
	return out
}

// End returns the final waypoint position of the mission in meters.
// The zero Point is returned for an empty path.
func (p Path) End() Point {
	if len(p.segs) == 0 {
		return Point{}
	}
	return p.segs[len(p.segs)-1].To
}

// TotalDist returns the full traveled length in meters.
func (p Path) TotalDist() float64 {
	var total float64
	for i := range p.segs {
		total += p.segs[i].Dist
	}
	return total
}

// TotalSown returns the cumulative sown distance of the whole mission.
func (p Path) TotalSown() float64 {
	if len(p.segs) == 0 {
		return 0
	}
	return p.segs[len(p.segs)-1].SownAccum
}
