package plan

import (
	"github.com/Amnesia06/Generate-rows/field"
)

// assemble concatenates the sweep and headland phases in strict order,
// assigning 1-based step indices and the running sown distance (which grows
// only on SOW segments). The result is final: no reordering happens after
// this point.
func assemble(sweep, headland []field.Segment) field.Path {
	all := make([]field.Segment, 0, len(sweep)+len(headland))
	all = append(all, sweep...)
	all = append(all, headland...)
	var sown float64
	for i := range all {
		all[i].Step = i + 1
		if all[i].Action == field.Sow {
			sown += all[i].Dist
		}
		all[i].SownAccum = sown
	}
	return field.NewPath(all)
}
