// Package fake implements an in-memory planar arm and simulation. The arm only does forward
// kinematics: there are no dynamics, joint limits or collisions.
package fake

import (
	"context"
	"math"
	"sync"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	pb "go.viam.com/api/component/arm/v1"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/planardart/logging"
	"go.viam.com/planardart/planar"
	"go.viam.com/planardart/referenceframe"
	"go.viam.com/planardart/utils"
)

const (
	defaultNumLinks = 8
	defaultReach    = 0.5425

	// BaseHeading is the world heading of the first link when every joint is at zero, i.e. the
	// arm hangs straight down.
	BaseHeading = 1.5 * math.Pi
)

// Config is used for converting config attributes.
type Config struct {
	LinkLengths []float64 `json:"link_lengths,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (conf *Config) Validate(path string) error {
	for i, l := range conf.LinkLengths {
		if l <= 0 || math.IsNaN(l) {
			return errors.Errorf("%s: link_lengths[%d] must be positive, got %v", path, i, l)
		}
	}
	return nil
}

// DefaultLinkLengths returns eight equal links whose total length is the default reach.
func DefaultLinkLengths() []float64 {
	lengths := make([]float64, defaultNumLinks)
	for i := range lengths {
		lengths[i] = defaultReach / defaultNumLinks
	}
	return lengths
}

// Arm is a fake planar arm whose joints can be set directly.
type Arm struct {
	logger logging.Logger

	mu      sync.RWMutex
	lengths []float64
	joints  []referenceframe.Input
	// bodies[0] is the base, bodies[i+1] the distal end of link i.
	bodies []r3.Vector
}

// NewArm returns a new fake arm with every joint at zero.
func NewArm(conf *Config, logger logging.Logger) (*Arm, error) {
	if logger == nil {
		logger = logging.NewBlankLogger("fake_arm")
	}
	a := &Arm{logger: logger}
	if err := a.Reconfigure(conf); err != nil {
		return nil, err
	}
	return a, nil
}

// Reconfigure atomically replaces the arm geometry and resets every joint to zero.
func (a *Arm) Reconfigure(conf *Config) error {
	if conf == nil {
		conf = &Config{}
	}
	if err := conf.Validate("fake_arm"); err != nil {
		return err
	}
	lengths := conf.LinkLengths
	if len(lengths) == 0 {
		lengths = DefaultLinkLengths()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.lengths = append([]float64(nil), lengths...)
	a.joints = referenceframe.FloatsToInputs(make([]float64, len(lengths)))
	a.bodies = forwardKinematics(a.lengths, a.joints)
	return nil
}

// NumJoints returns the number of revolute joints, which equals the number of links.
func (a *Arm) NumJoints() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.lengths)
}

// Reach returns the distance from the base to the gripper when the arm is fully stretched.
func (a *Arm) Reach() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return floats.Sum(a.lengths)
}

// JointPositions returns the current joint angles in radians.
func (a *Arm) JointPositions(ctx context.Context) ([]referenceframe.Input, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]referenceframe.Input(nil), a.joints...), nil
}

// MoveToJointPositions sets the joint angles, in radians, relative to the previous link. The first
// joint is relative to BaseHeading.
func (a *Arm) MoveToJointPositions(ctx context.Context, joints []referenceframe.Input) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(joints) != len(a.lengths) {
		return errors.Errorf("fake arm has %d joints but %d positions were given", len(a.lengths), len(joints))
	}
	for i, j := range joints {
		if math.IsNaN(j.Value) || math.IsInf(j.Value, 0) {
			return errors.Errorf("joint %d position is not finite: %v", i, j.Value)
		}
	}
	a.logger.Debugw("moving fake arm", "distance", referenceframe.InputsL2Distance(a.joints, joints))
	a.joints = append([]referenceframe.Input(nil), joints...)
	a.bodies = forwardKinematics(a.lengths, a.joints)
	return nil
}

// MoveToJointPositionsProto sets the joint angles from positions given in degrees.
func (a *Arm) MoveToJointPositionsProto(ctx context.Context, positions *pb.JointPositions) error {
	if positions == nil {
		return errors.New("no joint positions given")
	}
	return a.MoveToJointPositions(ctx, referenceframe.FloatsToInputs(referenceframe.JointPositionsToRadians(positions)))
}

// CurrentJointPositionsProto returns the joint angles in degrees.
func (a *Arm) CurrentJointPositionsProto(ctx context.Context) (*pb.JointPositions, error) {
	joints, err := a.JointPositions(ctx)
	if err != nil {
		return nil, err
	}
	return referenceframe.JointPositionsFromRadians(referenceframe.InputsToFloats(joints)), nil
}

// Gripper returns the body at the end of the last link.
func (a *Arm) Gripper() planar.Body {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return &body{arm: a, index: len(a.lengths)}
}

// Joint returns the body at the distal end of link index.
func (a *Arm) Joint(index int) (planar.Body, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if index < 0 || index >= len(a.lengths) {
		return nil, errors.Errorf("joint index %d out of range [0, %d)", index, len(a.lengths))
	}
	return &body{arm: a, index: index + 1}, nil
}

func (a *Arm) position(index int) r3.Vector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.bodies[index]
}

// body reads the arm's current pose on every call rather than snapshotting it.
type body struct {
	arm   *Arm
	index int
}

func (b *body) WorldPosition() r3.Vector {
	return b.arm.position(b.index)
}

func forwardKinematics(lengths []float64, joints []referenceframe.Input) []r3.Vector {
	bodies := make([]r3.Vector, len(lengths)+1)
	heading := BaseHeading
	for i, l := range lengths {
		heading += joints[i].Value
		bodies[i+1] = bodies[i].Add(r3.Vector{X: l * math.Cos(heading), Y: l * math.Sin(heading)})
	}
	return bodies
}

// Straighten returns joint inputs that point every link along the given world heading.
func Straighten(numJoints int, heading float64) []referenceframe.Input {
	values := make([]float64, numJoints)
	if numJoints > 0 {
		values[0] = heading - BaseHeading
	}
	return referenceframe.FloatsToInputs(values)
}

// DegreesToInputs is a helper for tests and examples that pose the arm in degrees.
func DegreesToInputs(degrees ...float64) []referenceframe.Input {
	radians := make([]float64, len(degrees))
	for i, d := range degrees {
		radians[i] = utils.DegToRad(d)
	}
	return referenceframe.FloatsToInputs(radians)
}
