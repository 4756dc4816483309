package descriptor

import (
	"go.viam.com/planardart/logging"
	"go.viam.com/planardart/planar"
	"go.viam.com/planardart/spatialmath"
)

func init() {
	Register(KindPositionalCoord, Registration{
		Constructor: func(conf *Config, logger logging.Logger) Descriptor {
			return NewPositionalCoord(conf)
		},
	})
}

// PositionalCoord describes the gripper's cartesian position. The reachable area of the gripper
// is x in [-factor, factor] and y in [-factor, 0]; it maps x so that 0.5 is the base, and -y so
// that 1 is furthest below the base.
type PositionalCoord struct {
	factor   float64
	x, y     float64
	computed bool
}

// NewPositionalCoord returns a PositionalCoord for the given config.
func NewPositionalCoord(conf *Config) *PositionalCoord {
	return &PositionalCoord{factor: conf.Factor}
}

// Kind returns KindPositionalCoord.
func (pc *PositionalCoord) Kind() Kind {
	return KindPositionalCoord
}

// Dims returns 2.
func (pc *PositionalCoord) Dims() int {
	return 2
}

// Compute samples the gripper position.
func (pc *PositionalCoord) Compute(sim planar.Simulation, robot planar.Robot, initial spatialmath.Pose) error {
	pc.computed = false
	p, err := sampleGripper(robot)
	if err != nil {
		return err
	}
	pc.x, pc.y = p.X, p.Y
	pc.computed = true
	return nil
}

// Extract returns [x, y], each clamped to [0, 1].
func (pc *PositionalCoord) Extract() ([]float64, error) {
	if !pc.computed {
		return nil, newNotComputedError(pc.Kind())
	}
	return []float64{
		clampUnit((pc.x + pc.factor) / (2 * pc.factor)),
		clampUnit(-pc.y / pc.factor),
	}, nil
}
