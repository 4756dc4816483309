package descriptor

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/planardart/logging"
	"go.viam.com/planardart/testutils/inject"
)

func TestPolarCoord(t *testing.T) {
	const f = DefaultFactor
	for _, tc := range []struct {
		name     string
		gripper  r3.Vector
		expected []float64
	}{
		// atan2 gives 0, which is shifted to 2π
		{"stretched right", r3.Vector{X: f}, []float64{1, 1}},
		{"hanging down", r3.Vector{Y: -f}, []float64{1, 0.5}},
		{"stretched left", r3.Vector{X: -f}, []float64{1, 0}},
		{"half way down left", r3.Vector{X: -f / 4, Y: -f / 4}, []float64{math.Sqrt2 / 4, 0.25}},
		{"just above the right edge wraps", r3.Vector{X: f, Y: 0.05 * f}, []float64{math.Hypot(1, 0.05), 1}},
		{"above the base", r3.Vector{Y: f / 2}, []float64{0.5, 0}},
		{"base", r3.Vector{}, []float64{0, 1}},
	} {
		tc := tc // per-iteration copy (go1.22 loop semantics)
		t.Run(tc.name, func(t *testing.T) {
			pc := NewPolarCoord(DefaultConfig(), logging.NewTestLogger(t))
			test.That(t, pc.Compute(nil, inject.NewChainRobot(tc.gripper), nil), test.ShouldBeNil)
			features, err := pc.Extract()
			test.That(t, err, test.ShouldBeNil)
			test.That(t, features, test.ShouldHaveLength, 2)
			test.That(t, features[0], test.ShouldAlmostEqual, math.Min(tc.expected[0], 1))
			test.That(t, features[1], test.ShouldAlmostEqual, tc.expected[1])
			test.That(t, pc.OutOfRange(), test.ShouldBeFalse)
		})
	}
}

func TestPolarCoordOutOfRange(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	d, err := New(KindPolarCoord, nil, logger)
	test.That(t, err, test.ShouldBeNil)
	pc, ok := d.(*PolarCoord)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, pc.OutOfRange(), test.ShouldBeFalse)

	// through the floor, beyond reach plus half a link
	beyond := DefaultFactor + DefaultThickness
	test.That(t, pc.Compute(nil, inject.NewChainRobot(r3.Vector{Y: -beyond}), nil), test.ShouldBeNil)
	test.That(t, pc.OutOfRange(), test.ShouldBeTrue)
	test.That(t, logs.FilterMessageSnippet("reachable range").Len(), test.ShouldEqual, 1)

	// still usable, and clamped
	features, err := pc.Extract()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, features[0], test.ShouldEqual, 1.)
	test.That(t, features[1], test.ShouldAlmostEqual, 0.5)

	// within half a link of the reach is tolerated
	test.That(t, pc.Compute(nil, inject.NewChainRobot(r3.Vector{Y: -(DefaultFactor + DefaultThickness/4)}), nil), test.ShouldBeNil)
	test.That(t, pc.OutOfRange(), test.ShouldBeFalse)
	test.That(t, logs.FilterMessageSnippet("reachable range").Len(), test.ShouldEqual, 1)

	// above the base the range check does not apply
	test.That(t, pc.Compute(nil, inject.NewChainRobot(r3.Vector{X: -3, Y: 3}), nil), test.ShouldBeNil)
	test.That(t, pc.OutOfRange(), test.ShouldBeFalse)

	// the flag is cleared by a failed compute
	test.That(t, pc.Compute(nil, inject.NewChainRobot(r3.Vector{Y: -beyond}), nil), test.ShouldBeNil)
	test.That(t, pc.OutOfRange(), test.ShouldBeTrue)
	test.That(t, IsInvalidInput(pc.Compute(nil, nil, nil)), test.ShouldBeTrue)
	test.That(t, pc.OutOfRange(), test.ShouldBeFalse)
}
