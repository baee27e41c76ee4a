// Package generaterows computes deterministic, complete-coverage traversal
// plans for rectangular fields, executed by an autonomous sowing rover.
//
// 🚜 What is Generate-rows?
//
//	A pure-Go planning library plus a small CLI that turns field and rover
//	geometry into an ordered, labeled mission path:
//		• field/   lane-grid model: GridSpec, Waypoint, Segment, Path
//		• plan/    the planning pipeline: serpentine interior sweep,
//		  headland (perimeter) retrace, exit-gap carving, path assembly
//		• planlog/ ordered per-segment mission log with timestamps
//		• viz/     terminal replay of a computed path
//
// ✨ Why choose Generate-rows?
//
//   - Deterministic – identical inputs always yield a bit-identical path
//   - Complete coverage – every interior lane and every headland cell is
//     sown exactly once, minus an intentional buffer at the exit
//   - Pure computation – the core performs no I/O, no locking, no retries
//
// The planner works on a lane grid: lanes along X are one rover width wide,
// rows along Y are one rover length deep. Interior lanes are swept in a
// serpentine (boustrophedon) pattern; the outermost lanes (the headland) are
// retraced last as one contiguous perimeter lap that ends at the mission
// exit, with an intentional unsown buffer carved immediately before it.
//
// Dive into plan.Plan for the pipeline entry point and cmd/generate-rows
// for the command-line surface.
package generaterows
