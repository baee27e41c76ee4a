package plan_test

import (
	"testing"

	"github.com/Amnesia06/Generate-rows/field"
	"github.com/Amnesia06/Generate-rows/plan"
)

// BenchmarkPlan measures a full pipeline run on a 200×200 m field with a
// 2×2 m rover (a 100×100 lane grid).
func BenchmarkPlan(b *testing.B) {
	spec, err := field.NewGridSpec(200, 200, 2, 2)
	if err != nil {
		b.Fatal(err)
	}
	exit := plan.AtCorner(plan.BottomRight)
	gap := plan.GapSpec{Size: 2}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := plan.Plan(spec, exit, gap); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPlanSmall measures the demo-sized mission.
func BenchmarkPlanSmall(b *testing.B) {
	spec, err := field.NewGridSpec(20, 10, 2, 2)
	if err != nil {
		b.Fatal(err)
	}
	exit := plan.AtCorner(plan.BottomRight)
	gap := plan.GapSpec{Size: 2}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := plan.Plan(spec, exit, gap); err != nil {
			b.Fatal(err)
		}
	}
}
