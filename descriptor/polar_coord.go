package descriptor

import (
	"math"

	"go.viam.com/planardart/logging"
	"go.viam.com/planardart/planar"
	"go.viam.com/planardart/spatialmath"
)

func init() {
	Register(KindPolarCoord, Registration{
		Constructor: func(conf *Config, logger logging.Logger) Descriptor {
			return NewPolarCoord(conf, logger)
		},
	})
}

// The gripper works in the lower half plane, so angles are kept in (π-0.10, 2π+0.10] instead of
// wrapping through zero.
const (
	polarWrapBelow = angleSlack
	polarAngleMin  = math.Pi
	polarAngleMax  = twoPi
)

// PolarCoord describes the gripper's position as its distance from the base and its angle
// around it.
type PolarCoord struct {
	factor    float64
	thickness float64
	logger    logging.Logger

	radius, theta float64
	outOfRange    bool
	computed      bool
}

// NewPolarCoord returns a PolarCoord for the given config. Out of range samples are reported to
// logger.
func NewPolarCoord(conf *Config, logger logging.Logger) *PolarCoord {
	if logger == nil {
		logger = logging.NewBlankLogger(string(KindPolarCoord))
	}
	return &PolarCoord{factor: conf.Factor, thickness: conf.Thickness, logger: logger}
}

// Kind returns KindPolarCoord.
func (pc *PolarCoord) Kind() Kind {
	return KindPolarCoord
}

// Dims returns 2.
func (pc *PolarCoord) Dims() int {
	return 2
}

// Compute samples the gripper position and converts it to polar form. A gripper below the base
// is expected to be within factor+thickness/2 of it at an angle in [π-0.10, 2π+0.10]; anything
// else means the simulation let the arm through a wall. That is logged and flagged by OutOfRange
// but the sample is still used, as Extract's clamping keeps it in bounds.
func (pc *PolarCoord) Compute(sim planar.Simulation, robot planar.Robot, initial spatialmath.Pose) error {
	pc.computed = false
	p, err := sampleGripper(robot)
	if err != nil {
		return err
	}

	radius, theta := spatialmath.Polar(p)
	if theta <= polarWrapBelow {
		theta += twoPi
	}
	pc.radius, pc.theta = radius, theta

	inRange := theta >= polarAngleMin-angleSlack && theta <= polarAngleMax+angleSlack &&
		radius <= pc.factor+pc.thickness/2
	pc.outOfRange = !(p.Y > 0 || inRange)
	if pc.outOfRange {
		pc.logger.Warnw("gripper outside of its reachable range",
			"x", p.X, "y", p.Y, "radius", radius, "theta", theta, "max_radius", pc.factor+pc.thickness/2)
	}
	pc.computed = true
	return nil
}

// OutOfRange returns whether the last Compute sampled the gripper outside of its expected range.
func (pc *PolarCoord) OutOfRange() bool {
	return pc.computed && pc.outOfRange
}

// Extract returns [radius, angle]: the radius divided by factor and the angle mapped from [π, 2π],
// each clamped to [0, 1].
func (pc *PolarCoord) Extract() ([]float64, error) {
	if !pc.computed {
		return nil, newNotComputedError(pc.Kind())
	}
	return []float64{
		clampUnit(pc.radius / pc.factor),
		clampUnit((pc.theta - polarAngleMin) / (polarAngleMax - polarAngleMin)),
	}, nil
}
