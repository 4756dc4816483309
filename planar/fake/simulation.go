package fake

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"go.viam.com/planardart/planar"
	"go.viam.com/planardart/referenceframe"
	"go.viam.com/planardart/spatialmath"
)

// Controller holds a fixed command vector.
type Controller struct {
	mu     sync.RWMutex
	params []float64
}

// NewController returns a controller commanding the given parameters.
func NewController(params ...float64) *Controller {
	return &Controller{params: append([]float64(nil), params...)}
}

// Parameters returns a copy of the command vector.
func (c *Controller) Parameters() []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]float64(nil), c.params...)
}

// SetParameters replaces the command vector.
func (c *Controller) SetParameters(params []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params = append([]float64(nil), params...)
}

// Simulation ties a controller to an arm. Its controller's parameters are read as target joint
// angles in radians, one per joint.
type Simulation struct {
	arm        *Arm
	controller *Controller
}

// NewSimulation returns a simulation of arm driven by controller.
func NewSimulation(arm *Arm, controller *Controller) *Simulation {
	if controller == nil {
		controller = NewController()
	}
	return &Simulation{arm: arm, controller: controller}
}

// Controller returns the simulation's controller.
func (s *Simulation) Controller() planar.Controller {
	return s.controller
}

// Robot returns the simulated arm, or nil if the simulation has none.
func (s *Simulation) Robot() planar.Robot {
	if s.arm == nil {
		return nil
	}
	return s.arm
}

// Initial returns the pose of the arm's base: the origin, facing straight down.
func (s *Simulation) Initial() spatialmath.Pose {
	return spatialmath.NewPose2D(0, 0, BaseHeading)
}

// Step moves the arm straight to the commanded joint angles. Extra parameters beyond the arm's
// joint count are ignored; fewer is an error.
func (s *Simulation) Step(ctx context.Context) error {
	if s.arm == nil {
		return errors.New("simulation has no arm")
	}
	params := s.controller.Parameters()
	numJoints := s.arm.NumJoints()
	if len(params) < numJoints {
		return errors.Errorf("controller has %d parameters but the arm has %d joints", len(params), numJoints)
	}
	return s.arm.MoveToJointPositions(ctx, referenceframe.FloatsToInputs(params[:numJoints]))
}
