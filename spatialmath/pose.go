// Package spatialmath defines the planar poses and geometric helpers shared by the arm test
// doubles and the descriptors.
package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Pose represents the location and heading of an object in the plane. Z of Point is carried
// through untouched but ignored by the planar helpers.
type Pose interface {
	Point() r3.Vector
	// Theta is the heading about the Z axis in radians.
	Theta() float64
}

type pose2D struct {
	point r3.Vector
	theta float64
}

// NewPose2D returns a planar pose at (x, y) with the given heading.
func NewPose2D(x, y, theta float64) Pose {
	return &pose2D{point: r3.Vector{X: x, Y: y}, theta: theta}
}

// NewZeroPose returns a pose at the origin with zero heading.
func NewZeroPose() Pose {
	return &pose2D{}
}

func (p *pose2D) Point() r3.Vector {
	return p.point
}

func (p *pose2D) Theta() float64 {
	return p.theta
}

func (p *pose2D) String() string {
	return fmt.Sprintf("{X:%.4f Y:%.4f Theta:%.4f}", p.point.X, p.point.Y, p.theta)
}

// Heading returns the world frame direction of travel from `from` to `to`, atan2(dy, dx), in
// (-pi, pi].
func Heading(from, to r3.Vector) float64 {
	d := to.Sub(from)
	return math.Atan2(d.Y, d.X)
}

// Polar returns the planar distance of p from the origin and its angle atan2(y, x) in (-pi, pi].
func Polar(p r3.Vector) (radius, theta float64) {
	return math.Hypot(p.X, p.Y), math.Atan2(p.Y, p.X)
}

// FromPolar is the inverse of Polar, returning a point in the Z=0 plane.
func FromPolar(radius, theta float64) r3.Vector {
	return r3.Vector{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
}
