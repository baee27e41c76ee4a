// Package config loads optional mission profiles from YAML. A profile only
// provides defaults: CLI flags that were set explicitly always win.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mission models one planning configuration; all distances are meters.
type Mission struct {
	FieldWidth   float64 `yaml:"field_width"`
	FieldBreadth float64 `yaml:"field_breadth"`
	RoverWidth   float64 `yaml:"rover_width"`
	RoverLength  float64 `yaml:"rover_length"`
	// Exit selects the termination point: tl|tr|bl|br or side:lane
	// (e.g. top:3, left:2).
	Exit string `yaml:"exit"`
	// Gap is the unsown buffer carved before the exit.
	Gap float64 `yaml:"gap"`
}

// Default returns the demo mission: 20×10 m field, 2×2 m rover,
// bottom-right exit, 2 m buffer.
func Default() Mission {
	return Mission{
		FieldWidth:   20,
		FieldBreadth: 10,
		RoverWidth:   2,
		RoverLength:  2,
		Exit:         "br",
		Gap:          2,
	}
}

// Load reads a mission profile from path. Fields absent from the file keep
// their Default values; geometry validation stays with the planner.
func Load(path string) (Mission, error) {
	m := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Mission{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Mission{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return m, nil
}
