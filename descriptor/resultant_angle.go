package descriptor

import (
	"math"

	"github.com/golang/geo/r3"
	"go.uber.org/multierr"

	"go.viam.com/planardart/logging"
	"go.viam.com/planardart/planar"
	"go.viam.com/planardart/spatialmath"
)

func init() {
	Register(KindResultantAngle, Registration{
		Constructor: func(conf *Config, logger logging.Logger) Descriptor {
			return NewResultantAngle(conf)
		},
	})
	Register(KindRelativeResultantAngle, Registration{
		Constructor: func(conf *Config, logger logging.Logger) Descriptor {
			return NewRelativeResultantAngle(conf)
		},
	})
}

const (
	// Absolute headings live in [0, 2π], with slack on both ends.
	absoluteClipLow  = -angleSlack
	absoluteClipHigh = twoPi + angleSlack

	// Two equal links each turning at most ±π/2 give a pair heading within ±3π/4 of the
	// previous pair.
	relativeAngleMax  = 0.75 * math.Pi
	relativeAngleMin  = -relativeAngleMax
	relativeClipLow   = relativeAngleMin - angleSlack
	relativeClipHigh  = relativeAngleMax + angleSlack
	initialHeadingRef = 1.5 * math.Pi // straight down
)

// An angleFrame turns the heading of a segment of the chain into a feature.
type angleFrame interface {
	kind() Kind
	// feature maps heading, the clipped absolute heading of a segment, to [0, 1]. previous is
	// the clipped absolute heading of the segment before it, or straight down for the first one.
	feature(heading, previous float64) float64
}

// absoluteFrame maps headings over the full [0, 2π] circle.
type absoluteFrame struct{}

func (absoluteFrame) kind() Kind {
	return KindResultantAngle
}

func (absoluteFrame) feature(heading, _ float64) float64 {
	return clampUnit(heading / twoPi)
}

// relativeFrame maps the turn from the previous segment over [-3π/4, 3π/4].
type relativeFrame struct{}

func (relativeFrame) kind() Kind {
	return KindRelativeResultantAngle
}

func (relativeFrame) feature(heading, previous float64) float64 {
	return clampUnit((relativeAngle(heading, previous) - relativeAngleMin) / (relativeAngleMax - relativeAngleMin))
}

func relativeAngle(heading, previous float64) float64 {
	return clipAngle(heading-previous, relativeClipLow, relativeClipHigh)
}

// ResultantAngle describes the posture of the arm as the heading of each pair of links. It walks
// the chain from the base through joints 1, 3, 5, ... and emits one feature per segment.
type ResultantAngle struct {
	jointCount int
	frame      angleFrame

	features []float64
	computed bool
}

// NewResultantAngle returns a descriptor of the absolute heading of every segment, mapped from
// [0, 2π] to [0, 1].
func NewResultantAngle(conf *Config) *ResultantAngle {
	return &ResultantAngle{jointCount: conf.JointCount, frame: absoluteFrame{}}
}

// NewRelativeResultantAngle returns a descriptor of the heading of every segment relative to the
// absolute heading of the previous segment, mapped from [-3π/4, 3π/4] to [0, 1]. The first
// segment is taken relative to straight down.
func NewRelativeResultantAngle(conf *Config) *ResultantAngle {
	return &ResultantAngle{jointCount: conf.JointCount, frame: relativeFrame{}}
}

// Kind returns KindResultantAngle or KindRelativeResultantAngle.
func (ra *ResultantAngle) Kind() Kind {
	return ra.frame.kind()
}

// Dims returns the number of segments in the chain.
func (ra *ResultantAngle) Dims() int {
	return chainLength(ra.jointCount)
}

// Compute samples the chain's joints and computes one feature per segment.
func (ra *ResultantAngle) Compute(sim planar.Simulation, robot planar.Robot, initial spatialmath.Pose) error {
	ra.computed = false
	if robot == nil {
		return NewInvalidInputError("no robot given")
	}

	features := make([]float64, 0, ra.Dims())
	base := r3.Vector{}
	previous := initialHeadingRef
	for i := 1; i < ra.jointCount; i += 2 {
		body, err := robot.Joint(i)
		if err != nil {
			return multierr.Combine(NewInvalidInputError("cannot read joint %d of %d", i, ra.jointCount), err)
		}
		p, err := sampleBody(body, "joint")
		if err != nil {
			return err
		}

		heading := clipAngle(spatialmath.Heading(base, p), absoluteClipLow, absoluteClipHigh)
		features = append(features, ra.frame.feature(heading, previous))
		// the next segment is measured against this one's absolute heading, never its relative one
		previous = heading
		base = p
	}

	ra.features = features
	ra.computed = true
	return nil
}

// Extract returns a copy of the computed features.
func (ra *ResultantAngle) Extract() ([]float64, error) {
	if !ra.computed {
		return nil, newNotComputedError(ra.Kind())
	}
	return append([]float64(nil), ra.features...), nil
}
