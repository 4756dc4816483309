package inject

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/planardart/planar"
)

// Body is an injected body.
type Body struct {
	WorldPositionFunc func() r3.Vector
}

// NewBodyAt returns a body fixed at the given point.
func NewBodyAt(x, y float64) *Body {
	p := r3.Vector{X: x, Y: y}
	return &Body{WorldPositionFunc: func() r3.Vector { return p }}
}

// WorldPosition calls the injected WorldPosition or returns the origin.
func (b *Body) WorldPosition() r3.Vector {
	if b.WorldPositionFunc == nil {
		return r3.Vector{}
	}
	return b.WorldPositionFunc()
}

// Robot is an injected robot.
type Robot struct {
	planar.Robot
	GripperFunc func() planar.Body
	JointFunc   func(index int) (planar.Body, error)
}

// Gripper calls the injected Gripper or the real version.
func (r *Robot) Gripper() planar.Body {
	if r.GripperFunc == nil {
		return r.Robot.Gripper()
	}
	return r.GripperFunc()
}

// Joint calls the injected Joint or the real version.
func (r *Robot) Joint(index int) (planar.Body, error) {
	if r.JointFunc == nil {
		return r.Robot.Joint(index)
	}
	return r.JointFunc(index)
}

// NewChainRobot returns a robot whose joints sit at the given points, in joint index order, with
// the gripper at the last point. Indices past the end return an error.
func NewChainRobot(points ...r3.Vector) *Robot {
	bodyAt := func(p r3.Vector) planar.Body {
		return &Body{WorldPositionFunc: func() r3.Vector { return p }}
	}
	return &Robot{
		GripperFunc: func() planar.Body {
			if len(points) == 0 {
				return nil
			}
			return bodyAt(points[len(points)-1])
		},
		JointFunc: func(index int) (planar.Body, error) {
			if index < 0 || index >= len(points) {
				return nil, errors.Errorf("no joint %d", index)
			}
			return bodyAt(points[index]), nil
		},
	}
}

// Controller is an injected controller.
type Controller struct {
	planar.Controller
	ParametersFunc func() []float64
}

// Parameters calls the injected Parameters or the real version.
func (c *Controller) Parameters() []float64 {
	if c.ParametersFunc == nil {
		return c.Controller.Parameters()
	}
	return c.ParametersFunc()
}

// Simulation is an injected simulation.
type Simulation struct {
	planar.Simulation
	ControllerFunc func() planar.Controller
}

// Controller calls the injected Controller or the real version.
func (s *Simulation) Controller() planar.Controller {
	if s.ControllerFunc == nil {
		return s.Simulation.Controller()
	}
	return s.ControllerFunc()
}

// NewSimulationWithParameters returns a simulation whose controller yields params.
func NewSimulationWithParameters(params ...float64) *Simulation {
	controller := &Controller{ParametersFunc: func() []float64 { return params }}
	return &Simulation{ControllerFunc: func() planar.Controller { return controller }}
}
