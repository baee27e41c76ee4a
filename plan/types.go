// Package plan defines exit/gap specifications and sentinel errors for the
// planning pipeline.
package plan

import (
	"errors"

	"github.com/Amnesia06/Generate-rows/field"
)

// Sentinel errors for planning stages.
var (
	// ErrExitSpec is returned for an out-of-range exit lane, an unknown
	// side/corner, or a boundary lane that coincides with a corner (that
	// case must be expressed as a corner exit).
	ErrExitSpec = errors.New("plan: invalid exit specification")

	// ErrGapOverflow is returned when the requested gap exceeds the boundary
	// run available between the nearest corner and the exit.
	ErrGapOverflow = errors.New("plan: gap exceeds the boundary run before the exit")

	// ErrPlanning is returned when the sweep terminal is not adjacent to the
	// headland ring. It indicates a contract breach between the sweep and
	// headland stages and is never user-recoverable.
	ErrPlanning = errors.New("plan: sweep terminal not adjacent to the headland ring")
)

// Corner identifies one of the four grid corners.
type Corner int

const (
	// BottomLeft is lane (0, 0).
	BottomLeft Corner = iota
	// BottomRight is lane (XMax, 0).
	BottomRight
	// TopLeft is lane (0, YMax).
	TopLeft
	// TopRight is lane (XMax, YMax).
	TopRight
)

// String returns the short corner name used in logs and CLI flags.
func (c Corner) String() string {
	switch c {
	case BottomLeft:
		return "BL"
	case BottomRight:
		return "BR"
	case TopLeft:
		return "TL"
	case TopRight:
		return "TR"
	default:
		return "?"
	}
}

// Side identifies one boundary side of the field.
type Side int

const (
	// SideBottom is the row at lane_y = 0.
	SideBottom Side = iota
	// SideRight is the lane at lane_x = XMax.
	SideRight
	// SideTop is the row at lane_y = YMax.
	SideTop
	// SideLeft is the lane at lane_x = 0.
	SideLeft
)

// String returns the side name used in logs and CLI flags.
func (s Side) String() string {
	switch s {
	case SideBottom:
		return "BOTTOM"
	case SideRight:
		return "RIGHT"
	case SideTop:
		return "TOP"
	default:
		return "LEFT"
	}
}

// ExitSpec selects the mission termination point: either a fixed grid corner
// or an arbitrary lane on one boundary side. Construct via AtCorner or
// AtBoundary; the zero value is not a valid exit.
type ExitSpec struct {
	corner   Corner
	lane     int
	side     Side
	isCorner bool
	set      bool
}

// AtCorner selects a grid corner as the exit.
func AtCorner(c Corner) ExitSpec {
	return ExitSpec{corner: c, isCorner: true, set: true}
}

// AtBoundary selects lane index `lane` on boundary side `s` as the exit.
// The lane must be strictly between the two corners of that side; a
// corner-coincident lane is rejected at resolve time with ErrExitSpec.
func AtBoundary(lane int, s Side) ExitSpec {
	return ExitSpec{lane: lane, side: s, set: true}
}

// resolve validates the exit selection against the grid and returns the exit
// waypoint.
func (e ExitSpec) resolve(spec field.GridSpec) (field.Waypoint, error) {
	if !e.set {
		return field.Waypoint{}, ErrExitSpec
	}
	if e.isCorner {
		switch e.corner {
		case BottomLeft:
			return field.Waypoint{LaneX: 0, LaneY: 0}, nil
		case BottomRight:
			return field.Waypoint{LaneX: spec.XMax, LaneY: 0}, nil
		case TopLeft:
			return field.Waypoint{LaneX: 0, LaneY: spec.YMax}, nil
		case TopRight:
			return field.Waypoint{LaneX: spec.XMax, LaneY: spec.YMax}, nil
		default:
			return field.Waypoint{}, ErrExitSpec
		}
	}
	switch e.side {
	case SideBottom, SideTop:
		// Corner-coincident lanes must be expressed as corner exits.
		if e.lane <= 0 || e.lane >= spec.XMax {
			return field.Waypoint{}, ErrExitSpec
		}
		y := 0
		if e.side == SideTop {
			y = spec.YMax
		}
		return field.Waypoint{LaneX: e.lane, LaneY: y}, nil
	case SideLeft, SideRight:
		if e.lane <= 0 || e.lane >= spec.YMax {
			return field.Waypoint{}, ErrExitSpec
		}
		x := 0
		if e.side == SideRight {
			x = spec.XMax
		}
		return field.Waypoint{LaneX: x, LaneY: e.lane}, nil
	default:
		return field.Waypoint{}, ErrExitSpec
	}
}

// sides returns the boundary side(s) the resolved exit belongs to: two for
// a corner, one otherwise. Used by the headland rotation tie-break.
func (e ExitSpec) sides() []Side {
	if !e.isCorner {
		return []Side{e.side}
	}
	switch e.corner {
	case BottomLeft:
		return []Side{SideBottom, SideLeft}
	case BottomRight:
		return []Side{SideBottom, SideRight}
	case TopLeft:
		return []Side{SideTop, SideLeft}
	default:
		return []Side{SideTop, SideRight}
	}
}

// GapSpec sizes the intentional unsown buffer immediately preceding the
// exit, in the same meter units as segment distances. Size must be positive
// and no longer than the headland run adjacent to the exit.
type GapSpec struct {
	Size float64
}
