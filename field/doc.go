// Package field defines the lane-grid data model shared by every planning
// stage: the grid specification derived from field and rover geometry, and
// the waypoint/segment/path value types the planner emits.
//
// What:
//
//   - GridSpec wraps the lane counts (XMax, YMax) and lane spacings derived
//     from the rover footprint. Immutable once constructed.
//   - Waypoint is a lane-cell center addressed by integer lane indices;
//     Point is its meter-space projection.
//   - Segment is one axis-aligned move between two points, labeled and
//     classified by Action (Sow/Navigate) and FarmType.
//   - Path is the immutable ordered sequence of segments produced by the
//     planner, the sole output artifact of a planning run.
//
// Why:
//
//   - Explicit value types replace the label-keyed accumulator lists of the
//     original procedural program: every stage is a pure function over these
//     types, with no shared mutable state.
//
// Errors:
//
//   - ErrValidation: field or rover geometry cannot form a valid lane grid
//     (non-positive dimensions, rover larger than the field, or fewer than
//     two lanes on either axis).
package field
