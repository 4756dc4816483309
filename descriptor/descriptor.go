// Package descriptor computes behavioral descriptors of a planar arm: small, fixed size feature
// vectors, normalized to [0, 1], that an outer quality-diversity search uses to place an
// evaluated behavior in its descriptor space.
//
// Each Descriptor is used as Compute then Extract once per evaluation. Compute samples the robot
// (and for AngleSum the controller) and overwrites the descriptor's state; Extract turns that
// state into a fresh feature vector. Descriptors hold no locks: use one instance per goroutine,
// or Evaluate for batches.
package descriptor

import (
	"strings"

	"github.com/pkg/errors"

	"go.viam.com/planardart/planar"
	"go.viam.com/planardart/spatialmath"
)

// LayoutVersion versions the arity and order of every kind's feature vector. Archives of
// recorded descriptors are only comparable across equal layout versions.
const LayoutVersion = 1

// Kind names a descriptor variant.
type Kind string

// The descriptor variants.
const (
	// KindPositionalCoord is the gripper's normalized cartesian position: [x, y].
	KindPositionalCoord = Kind("positional_coord")
	// KindPolarCoord is the gripper's normalized polar position: [radius, angle].
	KindPolarCoord = Kind("polar_coord")
	// KindResultantAngle is the absolute heading of each pair of links.
	KindResultantAngle = Kind("resultant_angle")
	// KindRelativeResultantAngle is the heading of each pair of links relative to the previous pair.
	KindRelativeResultantAngle = Kind("relative_resultant_angle")
	// KindAngleSum is the mean of each window of three consecutive controller commands.
	KindAngleSum = Kind("angle_sum")
)

// ParseKind parses either the snake_case name of a kind or its CamelCase form, e.g.
// "polar_coord" or "PolarCoord".
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
	for _, kind := range RegisteredKinds() {
		if strings.ReplaceAll(string(kind), "_", "") == norm {
			return kind, nil
		}
	}
	return "", errors.Errorf("unknown descriptor kind %q", name)
}

// A Descriptor maps the current pose of an arm to a normalized feature vector.
type Descriptor interface {
	// Kind returns which variant this is.
	Kind() Kind

	// Dims returns the length of the vector Extract returns. It is fixed for the lifetime of the
	// descriptor.
	Dims() int

	// Compute samples the simulation and robot, replacing any previously computed state. initial
	// is the initial transform of the robot base; no variant reads it and it may be nil. An error
	// wrapping ErrInvalidInput is returned for malformed collaborators, after which Extract fails
	// until the next successful Compute.
	Compute(sim planar.Simulation, robot planar.Robot, initial spatialmath.Pose) error

	// Extract returns the features of the last successful Compute. It does not modify the
	// descriptor, so repeated calls return equal vectors. It returns ErrNotComputed if Compute has
	// not succeeded yet.
	Extract() ([]float64, error)
}

// Describe runs Compute then Extract on d.
func Describe(d Descriptor, sim planar.Simulation, robot planar.Robot, initial spatialmath.Pose) ([]float64, error) {
	if err := d.Compute(sim, robot, initial); err != nil {
		return nil, err
	}
	return d.Extract()
}
