package descriptor

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"go.viam.com/planardart/utils"
)

// Defaults for the planar arm the descriptors were tuned on.
const (
	// DefaultFactor is the largest distance from the base the gripper can reach.
	DefaultFactor = 0.5425
	// DefaultThickness is the thickness of the arm's links.
	DefaultThickness = 0.0775
	// DefaultJointCount is the number of joints in the chain.
	DefaultJointCount = 8
)

// Config holds the geometry shared by every descriptor variant.
type Config struct {
	// Factor is the maximum reachable radius of the arm, and the scale positions are normalized by.
	Factor float64 `json:"factor"`
	// Thickness of a link. Only used as tolerance by PolarCoord's range check.
	Thickness float64 `json:"thickness"`
	// JointCount is the length of the joint chain. Angle chain descriptors sample joints 1, 3, 5,
	// ... below it.
	JointCount int `json:"joint_count"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Factor:     DefaultFactor,
		Thickness:  DefaultThickness,
		JointCount: DefaultJointCount,
	}
}

// NewConfigFromAttributes returns the default configuration overridden by the given attributes,
// keyed by the json names of Config's fields.
func NewConfigFromAttributes(attributes utils.AttributeMap) (*Config, error) {
	conf := DefaultConfig()
	if err := utils.DecodeAttributes(attributes, conf); err != nil {
		return nil, err
	}
	if err := conf.Validate("descriptor"); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate ensures all parts of the config are valid.
func (conf *Config) Validate(path string) error {
	var errs error
	switch {
	case conf.Factor == 0:
		errs = multierr.Append(errs, goutils.NewConfigValidationFieldRequiredError(path, "factor"))
	case conf.Factor < 0 || math.IsNaN(conf.Factor) || math.IsInf(conf.Factor, 0):
		errs = multierr.Append(errs, goutils.NewConfigValidationError(path,
			errors.Errorf("factor must be a positive finite number, got %v", conf.Factor)))
	}
	if conf.Thickness < 0 || math.IsNaN(conf.Thickness) || math.IsInf(conf.Thickness, 0) {
		errs = multierr.Append(errs, goutils.NewConfigValidationError(path,
			errors.Errorf("thickness must be a non-negative finite number, got %v", conf.Thickness)))
	}
	if conf.JointCount < 2 {
		errs = multierr.Append(errs, goutils.NewConfigValidationError(path,
			errors.Errorf("joint_count must be at least 2, got %d", conf.JointCount)))
	}
	return errs
}

// ChainLength is the number of segments the angle chain descriptors sample: one per odd joint
// index below JointCount.
func (conf *Config) ChainLength() int {
	return chainLength(conf.JointCount)
}

// chainLength is ⌈(jointCount-1)/2⌉.
func chainLength(jointCount int) int {
	return jointCount / 2
}
