package descriptor

import (
	"go.viam.com/planardart/logging"
	"go.viam.com/planardart/planar"
	"go.viam.com/planardart/spatialmath"
)

func init() {
	Register(KindAngleSum, Registration{
		Constructor: func(conf *Config, logger logging.Logger) Descriptor {
			return NewAngleSum()
		},
	})
}

const (
	angleSumWindows = 6
	angleSumWidth   = 3
	// AngleSumMinParameters is the shortest command vector AngleSum accepts.
	AngleSumMinParameters = angleSumWindows + angleSumWidth - 1
)

// AngleSum describes the controller's commands as the mean of each window of three consecutive
// commands. Unlike every other kind its features are neither rescaled nor clamped: commands are
// expected to already be in the controller's bounded range.
type AngleSum struct {
	means    [angleSumWindows]float64
	computed bool
}

// NewAngleSum returns an AngleSum.
func NewAngleSum() *AngleSum {
	return &AngleSum{}
}

// Kind returns KindAngleSum.
func (as *AngleSum) Kind() Kind {
	return KindAngleSum
}

// Dims returns 6.
func (as *AngleSum) Dims() int {
	return angleSumWindows
}

// Compute reads the controller's parameters and averages windows [i, i+2] for i in 0..5.
func (as *AngleSum) Compute(sim planar.Simulation, robot planar.Robot, initial spatialmath.Pose) error {
	as.computed = false
	if sim == nil {
		return NewInvalidInputError("no simulation given")
	}
	controller := sim.Controller()
	if controller == nil {
		return NewInvalidInputError("simulation has no controller")
	}
	commands := controller.Parameters()
	if len(commands) < AngleSumMinParameters {
		return NewInvalidInputError("angle sum needs at least %d controller parameters, got %d",
			AngleSumMinParameters, len(commands))
	}

	for i := 0; i < angleSumWindows; i++ {
		sum := commands[i] + commands[i+1] + commands[i+2]
		as.means[i] = sum / angleSumWidth
	}
	as.computed = true
	return nil
}

// Extract returns a copy of the six window means.
func (as *AngleSum) Extract() ([]float64, error) {
	if !as.computed {
		return nil, newNotComputedError(as.Kind())
	}
	return append([]float64(nil), as.means[:]...), nil
}
