package descriptor

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"

	"go.viam.com/planardart/planar"
)

const (
	twoPi = 2 * math.Pi

	// angleSlack widens every angular range so that link thickness near a boundary does not flip
	// an angle to the other end of its range.
	angleSlack = 0.10
)

// clipAngle brings angle into [low, high] with at most one ±2π correction. Angles already inside the
// range are returned unchanged. Inputs come from atan2 differences over bounded joint motion, so
// one correction always suffices.
func clipAngle(angle, low, high float64) float64 {
	switch {
	case angle < low:
		return angle + twoPi
	case angle > high:
		return angle - twoPi
	default:
		return angle
	}
}

// clampUnit bounds v to [0, 1]. NaN maps to 0.
func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return lo.Clamp(v, 0, 1)
}

// sampleBody reads a body's world position, rejecting missing bodies and non-finite positions.
func sampleBody(body planar.Body, what string) (r3.Vector, error) {
	if body == nil {
		return r3.Vector{}, NewInvalidInputError("robot has no %s", what)
	}
	p := body.WorldPosition()
	if !isFinite(p.X) || !isFinite(p.Y) {
		return r3.Vector{}, NewInvalidInputError("%s position is not finite: %v", what, p)
	}
	return p, nil
}

func sampleGripper(robot planar.Robot) (r3.Vector, error) {
	if robot == nil {
		return r3.Vector{}, NewInvalidInputError("no robot given")
	}
	return sampleBody(robot.Gripper(), "gripper")
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
