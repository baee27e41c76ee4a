// Package plan generates the complete-coverage traversal plan: a serpentine
// sweep of the interior lanes, a perimeter (headland) retrace, an intentional
// unsown buffer before the mission exit, and the final assembled path.
//
// What:
//
//   - Plan runs the whole pipeline: sweep → headland → exit gap → assembly.
//   - ExitSpec selects the termination point: a grid corner or an arbitrary
//     boundary lane; GapSpec sizes the unsown buffer carved before it.
//   - Every stage is a pure function of its inputs; identical inputs yield a
//     bit-identical path.
//
// Why:
//
//   - Coverage planning for autonomous ground rovers: sow every interior lane
//     and every headland cell exactly once, finish at a retrievable exit, and
//     leave a safe unsown approach buffer.
//
// Pipeline (conceptual states, each transition pure):
//
//	GRID_COMPUTED → INNER_SWEEP_PLANNED → HEADLAND_PLANNED →
//	EXIT_RESOLVED → ASSEMBLED
//
// Complexity:
//
//   - Plan: O(XMax·YMax) time and memory in lane counts; every lane is
//     visited once plus one perimeter lap.
//
// Errors:
//
//   - ErrExitSpec: exit references an out-of-range lane, an invalid side, or
//     a boundary lane that coincides with a corner.
//   - ErrGapOverflow: gap longer than the boundary run available before the
//     exit.
//   - ErrPlanning: the sweep terminal is not adjacent to the headland ring,
//     an internal invariant breach between stages, always fatal.
//   - field.ErrValidation: grid geometry invalid, or a non-positive gap.
//
// No partial path is ever returned: any stage failure aborts the run and the
// error propagates unmodified to the caller.
package plan
