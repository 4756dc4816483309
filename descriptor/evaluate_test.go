package descriptor

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/test"

	"go.viam.com/planardart/logging"
	"go.viam.com/planardart/planar/fake"
	"go.viam.com/planardart/planar"
	"go.viam.com/planardart/referenceframe"
	"go.viam.com/planardart/testutils/inject"
)

// fakeSamples returns n simulations of the default fake arm, each posed by its own controller.
func fakeSamples(t *testing.T, n int) []Sample {
	t.Helper()
	samples := make([]Sample, n)
	for k := range samples {
		arm, err := fake.NewArm(nil, logging.NewTestLogger(t))
		test.That(t, err, test.ShouldBeNil)
		params := make([]float64, arm.NumJoints())
		for i := range params {
			params[i] = 0.1 * float64((k+i)%5-2)
		}
		sim := fake.NewSimulation(arm, fake.NewController(params...))
		test.That(t, sim.Step(context.Background()), test.ShouldBeNil)
		samples[k] = Sample{Simulation: sim, Robot: sim.Robot(), Initial: sim.Initial()}
	}
	return samples
}

func TestEvaluateMatchesSequential(t *testing.T) {
	logger := logging.NewTestLogger(t)
	samples := fakeSamples(t, 23)
	for _, kind := range RegisteredKinds() {
		kind := kind // per-iteration copy (go1.22 loop semantics)
		t.Run(string(kind), func(t *testing.T) {
			results, err := Evaluate(context.Background(), kind, nil, logger, samples)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, results, test.ShouldHaveLength, len(samples))

			d, err := New(kind, nil, logger)
			test.That(t, err, test.ShouldBeNil)
			for i, s := range samples {
				expected, err := Describe(d, s.Simulation, s.Robot, s.Initial)
				test.That(t, err, test.ShouldBeNil)
				test.That(t, results[i], test.ShouldResemble, expected)
				test.That(t, results[i], test.ShouldHaveLength, d.Dims())
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	logger := logging.NewTestLogger(t)
	samples := fakeSamples(t, 6)
	samples[2].Robot = nil
	samples[4].Robot = nil

	results, err := Evaluate(context.Background(), KindPositionalCoord, nil, logger, samples)
	test.That(t, results, test.ShouldBeNil)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 2)
	test.That(t, err.Error(), test.ShouldContainSubstring, "sample 2")
	test.That(t, err.Error(), test.ShouldContainSubstring, "sample 4")
	test.That(t, IsInvalidInput(err), test.ShouldBeTrue)

	_, err = Evaluate(context.Background(), Kind("nope"), nil, logger, samples)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unknown descriptor kind")

	_, err = Evaluate(context.Background(), KindPolarCoord, &Config{}, logger, samples)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestEvaluatePanickingSample(t *testing.T) {
	logger := logging.NewTestLogger(t)
	samples := fakeSamples(t, 4)
	samples[1].Robot = &inject.Robot{GripperFunc: func() planar.Body { panic("gripper fell off") }}
	samples[2].Robot = nil

	results, err := Evaluate(context.Background(), KindPositionalCoord, nil, logger, samples)
	test.That(t, results, test.ShouldBeNil)
	test.That(t, err, test.ShouldNotBeNil)
	// the sample after the panicking one is still described
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 2)
	test.That(t, err.Error(), test.ShouldContainSubstring, "sample 1: panic: gripper fell off")
	test.That(t, err.Error(), test.ShouldContainSubstring, "sample 2")
	test.That(t, IsInvalidInput(err), test.ShouldBeTrue)

	samples[2] = fakeSamples(t, 1)[0]
	results, err = Evaluate(context.Background(), KindPositionalCoord, nil, logger, samples)
	test.That(t, results, test.ShouldBeNil)
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 1)
	test.That(t, err.Error(), test.ShouldContainSubstring, "sample 1: panic")
}

func TestDescribeSimulationWithoutArm(t *testing.T) {
	sim := fake.NewSimulation(nil, fake.NewController(0, 0, 0, 0, 0, 0, 0, 0))
	test.That(t, sim.Robot(), test.ShouldBeNil)
	for _, kind := range []Kind{KindPositionalCoord, KindPolarCoord, KindResultantAngle, KindRelativeResultantAngle} {
		d, err := New(kind, nil, logging.NewTestLogger(t))
		test.That(t, err, test.ShouldBeNil)
		_, err = Describe(d, sim, sim.Robot(), nil)
		test.That(t, IsInvalidInput(err), test.ShouldBeTrue)
	}
}

func TestEvaluateEmptyAndCanceled(t *testing.T) {
	logger := logging.NewTestLogger(t)

	results, err := Evaluate(context.Background(), KindAngleSum, nil, logger, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, results, test.ShouldBeEmpty)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Evaluate(ctx, KindAngleSum, nil, logger, fakeSamples(t, 4))
	test.That(t, errors.Is(err, context.Canceled), test.ShouldBeTrue)
}

func TestDescribeFakeArm(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewTestLogger(t)
	arm, err := fake.NewArm(nil, logger)
	test.That(t, err, test.ShouldBeNil)
	sim := fake.NewSimulation(arm, fake.NewController(0, 0, 0, 0, 0, 0, 0, 0))
	test.That(t, sim.Step(ctx), test.ShouldBeNil)

	describe := func(kind Kind) []float64 {
		t.Helper()
		d, err := New(kind, nil, logger)
		test.That(t, err, test.ShouldBeNil)
		features, err := Describe(d, sim, arm, sim.Initial())
		test.That(t, err, test.ShouldBeNil)
		return features
	}

	// hanging straight down
	features := describe(KindPositionalCoord)
	test.That(t, features[0], test.ShouldAlmostEqual, 0.5)
	test.That(t, features[1], test.ShouldAlmostEqual, 1)
	features = describe(KindPolarCoord)
	test.That(t, features[0], test.ShouldAlmostEqual, 1)
	test.That(t, features[1], test.ShouldAlmostEqual, 0.5)
	for _, f := range describe(KindResultantAngle) {
		test.That(t, f, test.ShouldAlmostEqual, 0.75)
	}
	for _, f := range describe(KindRelativeResultantAngle) {
		test.That(t, f, test.ShouldAlmostEqual, 0.5)
	}
	test.That(t, describe(KindAngleSum), test.ShouldResemble, []float64{0, 0, 0, 0, 0, 0})

	// stretched along +x
	test.That(t, arm.MoveToJointPositions(ctx, fake.Straighten(arm.NumJoints(), 0)), test.ShouldBeNil)
	features = describe(KindPositionalCoord)
	test.That(t, features[0], test.ShouldAlmostEqual, 1)
	test.That(t, features[1], test.ShouldAlmostEqual, 0)
	features = describe(KindPolarCoord)
	test.That(t, features[0], test.ShouldAlmostEqual, 1)
	test.That(t, features[1], test.ShouldAlmostEqual, 1)

	// every joint past the first bent 45 degrees counter clockwise: the first pair turns 22.5
	// degrees from straight down and every later pair 90 degrees from the one before
	test.That(t, arm.MoveToJointPositions(ctx, fake.DegreesToInputs(0, 45, 45, 45, 45, 45, 45, 45)), test.ShouldBeNil)
	features = describe(KindRelativeResultantAngle)
	test.That(t, features, test.ShouldHaveLength, 4)
	test.That(t, features[0], test.ShouldAlmostEqual, 0.5+0.125/1.5)
	for _, f := range features[1:] {
		test.That(t, f, test.ShouldAlmostEqual, 0.5+0.5/1.5)
	}

	joints, err := arm.JointPositions(ctx)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, referenceframe.InputsToFloats(joints)[1], test.ShouldAlmostEqual, 0.785398, 1e-6)
}
