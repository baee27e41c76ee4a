package plan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amnesia06/Generate-rows/field"
)

func demoSpec() field.GridSpec {
	return field.GridSpec{XMax: 10, YMax: 5, SpacingX: 2, SpacingY: 2}
}

func TestSweepPlanSerpentine(t *testing.T) {
	spec := demoSpec()
	segs, terminal := sweepPlan(spec)

	// 9 interior lanes, 8 connecting turns.
	require.Len(t, segs, 17)
	assert.Equal(t, field.Waypoint{LaneX: 9, LaneY: 4}, terminal)

	// Sowing passes alternate with V-Turns; odd lanes rise, even lanes fall.
	for i, s := range segs {
		if i%2 == 0 {
			lane := i/2 + 1
			assert.Equal(t, fmt.Sprintf("VRow%d", lane), s.Label)
			assert.Equal(t, field.Sow, s.Action)
			assert.Equal(t, field.InnerVerticalFarming, s.Farm)
			assert.InDelta(t, 6.0, s.Dist, 1e-12)
			if lane%2 == 1 {
				assert.Less(t, s.From.Y, s.To.Y, "odd lane %d must run low to high", lane)
			} else {
				assert.Greater(t, s.From.Y, s.To.Y, "even lane %d must run high to low", lane)
			}
		} else {
			assert.Equal(t, "V-Turn", s.Label)
			assert.Equal(t, field.Navigate, s.Action)
			assert.Equal(t, field.NavigationUnsown, s.Farm)
			assert.InDelta(t, spec.SpacingX, s.Dist, 1e-12)
		}
	}
}

func TestSweepPlanContinuity(t *testing.T) {
	segs, _ := sweepPlan(demoSpec())
	for i := 1; i < len(segs); i++ {
		assert.Equal(t, segs[i-1].To, segs[i].From, "segment %d must start where %d ended", i, i-1)
	}
	assert.Equal(t, field.Point{X: 2, Y: 2}, segs[0].From, "sweep starts at the first interior cell")
}

func TestSweepPlanTerminalParity(t *testing.T) {
	// Odd count of interior lanes ends high, even count ends low.
	_, term := sweepPlan(field.GridSpec{XMax: 10, YMax: 5, SpacingX: 2, SpacingY: 2})
	assert.Equal(t, field.Waypoint{LaneX: 9, LaneY: 4}, term)

	_, term = sweepPlan(field.GridSpec{XMax: 9, YMax: 5, SpacingX: 2, SpacingY: 2})
	assert.Equal(t, field.Waypoint{LaneX: 8, LaneY: 1}, term)
}

func TestSweepPlanMinimalGrid(t *testing.T) {
	// XMax = YMax = 2 leaves a single interior cell: one zero-length pass.
	segs, terminal := sweepPlan(field.GridSpec{XMax: 2, YMax: 2, SpacingX: 2, SpacingY: 2})

	require.Len(t, segs, 1)
	assert.Equal(t, "VRow1", segs[0].Label)
	assert.Zero(t, segs[0].Dist)
	assert.Equal(t, field.Waypoint{LaneX: 1, LaneY: 1}, terminal)
}
