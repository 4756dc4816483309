// Package referenceframe holds the joint input primitives used to pose the planar arm.
package referenceframe

import (
	"math"

	"github.com/samber/lo"
	pb "go.viam.com/api/component/arm/v1"
	"gonum.org/v1/gonum/floats"

	"go.viam.com/planardart/utils"
)

// Input wraps the input to a revolute joint of the planar arm, in radians.
type Input struct {
	Value float64
}

// FloatsToInputs wraps a slice of floats in Inputs.
func FloatsToInputs(values []float64) []Input {
	return lo.Map(values, func(f float64, _ int) Input {
		return Input{f}
	})
}

// InputsToFloats unwraps Inputs to raw floats.
func InputsToFloats(inputs []Input) []float64 {
	return lo.Map(inputs, func(in Input, _ int) float64 {
		return in.Value
	})
}

// JointPositionsToRadians converts the given positions into a slice
// of radians.
func JointPositionsToRadians(jp *pb.JointPositions) []float64 {
	return lo.Map(jp.GetValues(), func(d float64, _ int) float64 {
		return utils.DegToRad(d)
	})
}

// JointPositionsFromRadians converts the given slice of radians into
// joint positions (represented in degrees).
func JointPositionsFromRadians(radians []float64) *pb.JointPositions {
	return &pb.JointPositions{Values: lo.Map(radians, func(a float64, _ int) float64 {
		return utils.RadToDeg(a)
	})}
}

// InputsL2Distance returns the two-norm between the from and to vectors, or +Inf when their
// lengths differ.
func InputsL2Distance(from, to []Input) float64 {
	if len(from) != len(to) {
		return math.Inf(1)
	}
	return floats.Distance(InputsToFloats(from), InputsToFloats(to), 2)
}
