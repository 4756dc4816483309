// Package planar defines what descriptors read from a planar arm simulation: world positions of
// the arm's bodies and the command vector of its controller. Descriptors only ever read through
// these interfaces; they never move the arm or advance the simulation.
package planar

import (
	"github.com/golang/geo/r3"
)

// A Body is a rigid body of the arm whose world frame position can be sampled.
type Body interface {
	WorldPosition() r3.Vector
}

// A Robot is a handle on a simulated planar arm.
type Robot interface {
	// Gripper returns the terminal body of the chain.
	Gripper() Body
	// Joint returns the body at the distal end of the link with the given index. The base of the
	// chain sits at the world origin and is not itself a joint.
	Joint(index int) (Body, error)
}

// A Controller produces the command vector applied to the arm's joints.
type Controller interface {
	Parameters() []float64
}

// A Simulation exposes the controller driving the current evaluation.
type Simulation interface {
	Controller() Controller
}
