package cli

import (
	"github.com/spf13/cobra"

	"github.com/Amnesia06/Generate-rows/field"
	"github.com/Amnesia06/Generate-rows/internal/config"
	"github.com/Amnesia06/Generate-rows/plan"
	"github.com/Amnesia06/Generate-rows/planlog"
	"github.com/Amnesia06/Generate-rows/viz"
)

var (
	flagConfig       string
	flagFieldWidth   float64
	flagFieldBreadth float64
	flagRoverWidth   float64
	flagRoverLength  float64
	flagExit         string
	flagGap          float64
	flagAnimate      bool
	flagFPS          int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute and print the mission path",
	Args:  cobra.NoArgs,
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "YAML mission profile (explicit flags override file values)")
	f.Float64Var(&flagFieldWidth, "field-width", 20, "field width in meters")
	f.Float64Var(&flagFieldBreadth, "field-breadth", 10, "field breadth in meters")
	f.Float64Var(&flagRoverWidth, "rover-width", 2, "rover width in meters")
	f.Float64Var(&flagRoverLength, "rover-length", 2, "rover length in meters")
	f.StringVar(&flagExit, "exit", "br", "exit point: tl|tr|bl|br or side:lane (e.g. top:3)")
	f.Float64Var(&flagGap, "gap", 2, "unsown buffer before the exit in meters")
	f.BoolVar(&flagAnimate, "animate", false, "replay the path in the terminal")
	f.IntVar(&flagFPS, "fps", 12, "replay speed in lane-steps per second")
}

func runPlan(cmd *cobra.Command, args []string) error {
	mission := config.Default()
	if flagConfig != "" {
		var err error
		mission, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	fromFlags := flagConfig == ""
	if fromFlags || flags.Changed("field-width") {
		mission.FieldWidth = flagFieldWidth
	}
	if fromFlags || flags.Changed("field-breadth") {
		mission.FieldBreadth = flagFieldBreadth
	}
	if fromFlags || flags.Changed("rover-width") {
		mission.RoverWidth = flagRoverWidth
	}
	if fromFlags || flags.Changed("rover-length") {
		mission.RoverLength = flagRoverLength
	}
	if fromFlags || flags.Changed("exit") {
		mission.Exit = flagExit
	}
	if fromFlags || flags.Changed("gap") {
		mission.Gap = flagGap
	}

	spec, err := field.NewGridSpec(mission.FieldWidth, mission.FieldBreadth,
		mission.RoverWidth, mission.RoverLength)
	if err != nil {
		return err
	}
	exit, err := ParseExit(mission.Exit)
	if err != nil {
		return err
	}
	p, err := plan.Plan(spec, exit, plan.GapSpec{Size: mission.Gap})
	if err != nil {
		return err
	}

	logger := planlog.New(cmd.OutOrStdout(), planlog.SystemClock{})
	if err := logger.Fprint(p); err != nil {
		return err
	}

	if flagAnimate {
		return viz.Run(spec, p, viz.Options{FPS: flagFPS})
	}
	return nil
}
