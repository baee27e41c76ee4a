// Package plan - unified entry point for the coverage planner.
//
// This file provides the canonical pipeline dispatcher:
//
//   - Plan: validate the grid, resolve the exit, run the interior sweep,
//     the headland retrace and the exit-gap conversion, then assemble the
//     final immutable path.
//
// Design principles:
//   - Deterministic: no randomness, no map-order dependence; identical
//     inputs yield bit-identical paths.
//   - Strict sentinels: only errors from types.go and field; no fmt.Errorf
//     where a sentinel suffices.
//   - No partial output: any stage failure aborts the run before a Path
//     exists.
package plan

import (
	"github.com/Amnesia06/Generate-rows/field"
)

// Plan computes the full mission path for one grid/exit/gap configuration.
//
// Stages, each a pure function of the previous stage's output:
//
//	GRID_COMPUTED → INNER_SWEEP_PLANNED → HEADLAND_PLANNED →
//	EXIT_RESOLVED → ASSEMBLED
//
// Errors: field.ErrValidation (grid or gap inputs), ErrExitSpec,
// ErrGapOverflow, ErrPlanning; all propagate unmodified and no stage retries.
//
// Complexity: O(XMax + YMax) segments over O(XMax·YMax) covered cells.
func Plan(spec field.GridSpec, exit ExitSpec, gap GapSpec) (field.Path, error) {
	if err := spec.Validate(); err != nil {
		return field.Path{}, err
	}
	exitWp, err := exit.resolve(spec)
	if err != nil {
		return field.Path{}, err
	}

	sweepSegs, terminal := sweepPlan(spec)

	headSegs, err := headlandPlan(spec, terminal, exit, exitWp)
	if err != nil {
		return field.Path{}, err
	}

	headSegs, err = applyExitGap(headSegs, gap)
	if err != nil {
		return field.Path{}, err
	}

	return assemble(sweepSegs, headSegs), nil
}
