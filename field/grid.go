package field

import "math"

// GridSpec is the lane grid derived from field and rover geometry. Lane
// indices run 0..XMax along the width and 0..YMax along the breadth; the
// outermost indices (0 and the max) form the headland. Immutable once built.
type GridSpec struct {
	// XMax and YMax are the highest lane indices on each axis (lane count
	// minus one is the interior span). Invariant: XMax ≥ 2 and YMax ≥ 2.
	XMax, YMax int
	// SpacingX and SpacingY are the lane spacings in meters, equal to the
	// rover width and length respectively.
	SpacingX, SpacingY float64
}

// NewGridSpec derives the lane grid from field and rover dimensions, all in
// meters. Lane spacing along X is the rover width, along Y the rover length;
// XMax = ⌊fieldWidth/roverWidth⌋ and YMax = ⌊fieldBreadth/roverLength⌋. Any
// fractional remainder is folded into the outermost headland lane: no
// partial lane is created, and meter positions keep nominal spacing.
//
// Returns ErrValidation when any dimension is non-positive, the rover does
// not fit the field, or either axis yields fewer than two lanes (too small
// to hold both a headland and an interior).
//
// Complexity: O(1).
func NewGridSpec(fieldWidth, fieldBreadth, roverWidth, roverLength float64) (GridSpec, error) {
	if fieldWidth <= 0 || fieldBreadth <= 0 || roverWidth <= 0 || roverLength <= 0 {
		return GridSpec{}, ErrValidation
	}
	if roverWidth > fieldWidth || roverLength > fieldBreadth {
		return GridSpec{}, ErrValidation
	}
	xMax := int(math.Floor(fieldWidth / roverWidth))
	yMax := int(math.Floor(fieldBreadth / roverLength))
	if xMax < 2 || yMax < 2 {
		return GridSpec{}, ErrValidation
	}
	return GridSpec{
		XMax:     xMax,
		YMax:     yMax,
		SpacingX: roverWidth,
		SpacingY: roverLength,
	}, nil
}

// Validate re-checks the GridSpec invariants. Useful for specs constructed
// literally (e.g. in tests) rather than via NewGridSpec.
func (s GridSpec) Validate() error {
	if s.XMax < 2 || s.YMax < 2 || s.SpacingX <= 0 || s.SpacingY <= 0 {
		return ErrValidation
	}
	return nil
}

// InBounds reports whether w lies within the lane grid.
// Complexity: O(1).
func (s GridSpec) InBounds(w Waypoint) bool {
	return w.LaneX >= 0 && w.LaneX <= s.XMax && w.LaneY >= 0 && w.LaneY <= s.YMax
}

// OnPerimeter reports whether w sits on a headland lane or row.
// Complexity: O(1).
func (s GridSpec) OnPerimeter(w Waypoint) bool {
	if !s.InBounds(w) {
		return false
	}
	return w.LaneX == 0 || w.LaneX == s.XMax || w.LaneY == 0 || w.LaneY == s.YMax
}

// PointAt projects a waypoint into meter space: lane index × spacing.
// Complexity: O(1).
func (s GridSpec) PointAt(w Waypoint) Point {
	return Point{
		X: float64(w.LaneX) * s.SpacingX,
		Y: float64(w.LaneY) * s.SpacingY,
	}
}

// Dist returns the axis-aligned travel distance between two waypoints in
// meters. Segments are axis-aligned, so Manhattan equals Euclidean here.
// Complexity: O(1).
func (s GridSpec) Dist(a, b Waypoint) float64 {
	dx := float64(abs(b.LaneX-a.LaneX)) * s.SpacingX
	dy := float64(abs(b.LaneY-a.LaneY)) * s.SpacingY
	return dx + dy
}

// Segment builds a segment between two waypoints with its derived length.
// Step and SownAccum stay zero until assembly.
func (s GridSpec) Segment(from, to Waypoint, label string, act Action, farm FarmType) Segment {
	return Segment{
		From:   s.PointAt(from),
		To:     s.PointAt(to),
		Label:  label,
		Action: act,
		Farm:   farm,
		Dist:   s.Dist(from, to),
	}
}

// PerimeterLen returns the full headland lap length in meters: two sides of
// XMax lane-steps and two sides of YMax row-steps.
func (s GridSpec) PerimeterLen() float64 {
	return 2*float64(s.XMax)*s.SpacingX + 2*float64(s.YMax)*s.SpacingY
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
