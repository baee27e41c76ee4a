package plan_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amnesia06/Generate-rows/field"
	"github.com/Amnesia06/Generate-rows/plan"
)

func demoSpec(t *testing.T) field.GridSpec {
	t.Helper()
	spec, err := field.NewGridSpec(20, 10, 2, 2)
	require.NoError(t, err)
	return spec
}

func TestPlanBottomRightMission(t *testing.T) {
	spec := demoSpec(t)
	p, err := plan.Plan(spec, plan.AtCorner(plan.BottomRight), plan.GapSpec{Size: 2})
	require.NoError(t, err)

	// 17 sweep segments, 2 H-Turns, 4-run lap with the last run split in two.
	assert.Equal(t, 24, p.Len())
	assert.InDelta(t, 112.0, p.TotalSown(), 1e-9)
	assert.InDelta(t, 140.0, p.TotalDist(), 1e-9)
	assert.Equal(t, field.Point{X: 20, Y: 0}, p.End())

	assert.Equal(t, "VRow1", p.At(0).Label)
	last := p.At(p.Len() - 1)
	assert.Equal(t, "ExitGap", last.Label)
	assert.Equal(t, field.Navigate, last.Action)
	assert.Equal(t, field.NavigationUnsown, last.Farm)
	assert.InDelta(t, 2.0, last.Dist, 1e-9)
}

func TestPlanBoundaryExitMission(t *testing.T) {
	spec := demoSpec(t)
	p, err := plan.Plan(spec, plan.AtBoundary(3, plan.SideTop), plan.GapSpec{Size: 2})
	require.NoError(t, err)

	// Same coverage as the corner mission, different exit.
	assert.InDelta(t, 112.0, p.TotalSown(), 1e-9)
	assert.Equal(t, field.Point{X: 6, Y: 10}, p.End())
	assert.Equal(t, "ExitGap", p.At(p.Len()-1).Label)
}

func TestPlanContinuity(t *testing.T) {
	spec := demoSpec(t)
	p, err := plan.Plan(spec, plan.AtCorner(plan.BottomRight), plan.GapSpec{Size: 2})
	require.NoError(t, err)

	segs := p.Segments()
	for i := 1; i < len(segs); i++ {
		assert.Equal(t, segs[i-1].To, segs[i].From,
			"segment %d must start where segment %d ended", i, i-1)
	}
}

func TestPlanStepAndSownAccounting(t *testing.T) {
	spec := demoSpec(t)
	p, err := plan.Plan(spec, plan.AtCorner(plan.BottomRight), plan.GapSpec{Size: 2})
	require.NoError(t, err)

	var sown float64
	for i, s := range p.Segments() {
		assert.Equal(t, i+1, s.Step)
		if s.Action == field.Sow {
			sown += s.Dist
		}
		assert.InDelta(t, sown, s.SownAccum, 1e-9, "segment %d", i)
	}
}

func TestPlanDeterminism(t *testing.T) {
	spec := demoSpec(t)
	exit := plan.AtBoundary(2, plan.SideLeft)
	gap := plan.GapSpec{Size: 1.5}

	p1, err := plan.Plan(spec, exit, gap)
	require.NoError(t, err)
	p2, err := plan.Plan(spec, exit, gap)
	require.NoError(t, err)

	assert.Equal(t, p1.Segments(), p2.Segments())
}

// laneAt snaps a meter point back to its lane cell.
func laneAt(spec field.GridSpec, p field.Point) field.Waypoint {
	return field.Waypoint{
		LaneX: int(math.Round(p.X / spec.SpacingX)),
		LaneY: int(math.Round(p.Y / spec.SpacingY)),
	}
}

func TestPlanCompleteCoverage(t *testing.T) {
	spec := demoSpec(t)
	p, err := plan.Plan(spec, plan.AtCorner(plan.BottomRight), plan.GapSpec{Size: 2})
	require.NoError(t, err)

	covered := make(map[field.Waypoint]bool)
	for _, s := range p.Segments() {
		if s.Action != field.Sow {
			continue
		}
		cur, end := laneAt(spec, s.From), laneAt(spec, s.To)
		covered[cur] = true
		for cur != end {
			switch {
			case cur.LaneX < end.LaneX:
				cur.LaneX++
			case cur.LaneX > end.LaneX:
				cur.LaneX--
			case cur.LaneY < end.LaneY:
				cur.LaneY++
			default:
				cur.LaneY--
			}
			covered[cur] = true
		}
	}

	// Every lane cell of the grid is touched by a sowing pass: the interior
	// by the sweep, the perimeter by the headland lap (the exit cell itself
	// is sown by the run that opens the lap).
	assert.Len(t, covered, (spec.XMax+1)*(spec.YMax+1))
	for w := range covered {
		assert.True(t, spec.InBounds(w), "sown cell %+v out of bounds", w)
	}
}

func TestPlanGapConsumesFinalRun(t *testing.T) {
	spec := demoSpec(t)
	p, err := plan.Plan(spec, plan.AtCorner(plan.BottomRight), plan.GapSpec{Size: 10})
	require.NoError(t, err)

	// The whole 10 m right-lane run becomes the buffer; nothing is split.
	assert.Equal(t, 23, p.Len())
	assert.InDelta(t, 104.0, p.TotalSown(), 1e-9)
	last := p.At(p.Len() - 1)
	assert.Equal(t, "ExitGap", last.Label)
	assert.InDelta(t, 10.0, last.Dist, 1e-9)
	assert.Equal(t, field.Point{X: 20, Y: 0}, p.End())
}

func TestPlanErrors(t *testing.T) {
	spec := demoSpec(t)
	tests := []struct {
		name    string
		spec    field.GridSpec
		exit    plan.ExitSpec
		gap     plan.GapSpec
		wantErr error
	}{
		{
			name: "invalid grid", spec: field.GridSpec{},
			exit: plan.AtCorner(plan.BottomRight), gap: plan.GapSpec{Size: 2},
			wantErr: field.ErrValidation,
		},
		{
			name: "unset exit", spec: spec,
			exit: plan.ExitSpec{}, gap: plan.GapSpec{Size: 2},
			wantErr: plan.ErrExitSpec,
		},
		{
			name: "corner-coincident boundary lane", spec: spec,
			exit: plan.AtBoundary(0, plan.SideTop), gap: plan.GapSpec{Size: 2},
			wantErr: plan.ErrExitSpec,
		},
		{
			name: "gap longer than the final run", spec: spec,
			exit: plan.AtCorner(plan.BottomRight), gap: plan.GapSpec{Size: 11},
			wantErr: plan.ErrGapOverflow,
		},
		{
			name: "zero gap", spec: spec,
			exit: plan.AtCorner(plan.BottomRight), gap: plan.GapSpec{},
			wantErr: field.ErrValidation,
		},
		{
			name: "negative gap", spec: spec,
			exit: plan.AtCorner(plan.BottomRight), gap: plan.GapSpec{Size: -1},
			wantErr: field.ErrValidation,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := plan.Plan(tc.spec, tc.exit, tc.gap)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPlanAllCornerExits(t *testing.T) {
	spec := demoSpec(t)
	ends := map[plan.Corner]field.Point{
		plan.BottomLeft:  {X: 0, Y: 0},
		plan.BottomRight: {X: 20, Y: 0},
		plan.TopLeft:     {X: 0, Y: 10},
		plan.TopRight:    {X: 20, Y: 10},
	}
	for corner, end := range ends {
		p, err := plan.Plan(spec, plan.AtCorner(corner), plan.GapSpec{Size: 2})
		require.NoError(t, err, "corner %s", corner)
		assert.Equal(t, end, p.End(), "corner %s", corner)
		assert.InDelta(t, 112.0, p.TotalSown(), 1e-9, "corner %s", corner)
	}
}
