package field_test

import (
	"fmt"

	"github.com/Amnesia06/Generate-rows/field"
)

// Derive a lane grid for a 20×10 m field swept by a 2×2 m rover.
func ExampleNewGridSpec() {
	spec, err := field.NewGridSpec(20, 10, 2, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("lanes:", spec.XMax, "x", spec.YMax)
	fmt.Println("perimeter:", spec.PerimeterLen(), "m")
	fmt.Println("corner at:", spec.PointAt(field.Waypoint{LaneX: 10, LaneY: 5}))

	// Output:
	// lanes: 10 x 5
	// perimeter: 60 m
	// corner at: (20.0, 10.0)
}
