package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Amnesia06/Generate-rows/plan"
)

// ParseExit converts the CLI exit syntax into an ExitSpec: the corners
// tl|tr|bl|br, or a boundary lane as side:lane (top:3, bottom:1, left:2,
// right:4). Range checks against the grid stay with the planner.
func ParseExit(s string) (plan.ExitSpec, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "tl":
		return plan.AtCorner(plan.TopLeft), nil
	case "tr":
		return plan.AtCorner(plan.TopRight), nil
	case "bl":
		return plan.AtCorner(plan.BottomLeft), nil
	case "br":
		return plan.AtCorner(plan.BottomRight), nil
	}
	side, laneStr, ok := strings.Cut(v, ":")
	if !ok {
		return plan.ExitSpec{}, fmt.Errorf("cli: unrecognized exit %q (want tl|tr|bl|br or side:lane)", s)
	}
	lane, err := strconv.Atoi(laneStr)
	if err != nil {
		return plan.ExitSpec{}, fmt.Errorf("cli: exit lane %q is not a number", laneStr)
	}
	switch side {
	case "top":
		return plan.AtBoundary(lane, plan.SideTop), nil
	case "bottom":
		return plan.AtBoundary(lane, plan.SideBottom), nil
	case "left":
		return plan.AtBoundary(lane, plan.SideLeft), nil
	case "right":
		return plan.AtBoundary(lane, plan.SideRight), nil
	default:
		return plan.ExitSpec{}, fmt.Errorf("cli: unrecognized exit side %q (want top|bottom|left|right)", side)
	}
}
