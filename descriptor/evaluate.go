package descriptor

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/planardart/logging"
	"go.viam.com/planardart/planar"
	"go.viam.com/planardart/spatialmath"
	"go.viam.com/planardart/utils"
)

// A Sample is the state of one evaluation to describe.
type Sample struct {
	Simulation planar.Simulation
	Robot      planar.Robot
	Initial    spatialmath.Pose
}

// Evaluate describes every sample with a descriptor of the given kind and returns the feature
// vectors in sample order. Samples are spread over parallel workers, each with its own
// descriptor, so the collaborators of different samples must be safe to read concurrently.
// Errors of all failed samples are combined and annotated with the sample index.
func Evaluate(
	ctx context.Context,
	kind Kind,
	conf *Config,
	logger logging.Logger,
	samples []Sample,
) ([][]float64, error) {
	// fail fast on a bad kind or config before spinning up workers
	if _, err := New(kind, conf, logger); err != nil {
		return nil, err
	}

	results := make([][]float64, len(samples))
	errs := make([]error, len(samples))
	err := utils.GroupWorkParallel(
		ctx,
		len(samples),
		nil,
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			d, err := New(kind, conf, logger)
			return func(memberNum, workNum int) {
				if err != nil {
					errs[workNum] = err
					return
				}
				results[workNum], errs[workNum] = describeSample(d, samples[workNum])
				if errs[workNum] != nil {
					errs[workNum] = errors.Wrapf(errs[workNum], "sample %d", workNum)
				}
			}, nil
		},
	)
	if err != nil {
		return nil, err
	}
	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

// describeSample describes one sample, turning a panicking collaborator into an error so the rest
// of the worker's samples still run.
func describeSample(d Descriptor, s Sample) (features []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			features = nil
			err = errors.Errorf("panic: %v", r)
		}
	}()
	return Describe(d, s.Simulation, s.Robot, s.Initial)
}
