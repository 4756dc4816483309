package descriptor

import (
	"math"
	"testing"

	"go.uber.org/multierr"
	"go.viam.com/test"

	"go.viam.com/planardart/utils"
)

func TestConfigValidate(t *testing.T) {
	test.That(t, DefaultConfig().Validate("path"), test.ShouldBeNil)

	conf := &Config{Factor: 1, Thickness: 0, JointCount: 2}
	test.That(t, conf.Validate("path"), test.ShouldBeNil)

	conf = &Config{}
	err := conf.Validate("path")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 2)
	test.That(t, err.Error(), test.ShouldContainSubstring, "factor")
	test.That(t, err.Error(), test.ShouldContainSubstring, "joint_count")

	conf = &Config{Factor: -1, Thickness: math.NaN(), JointCount: 1}
	err = conf.Validate("path")
	test.That(t, multierr.Errors(err), test.ShouldHaveLength, 3)
	test.That(t, err.Error(), test.ShouldContainSubstring, "factor must be a positive finite number")
	test.That(t, err.Error(), test.ShouldContainSubstring, "thickness must be a non-negative finite number")
	test.That(t, err.Error(), test.ShouldContainSubstring, "joint_count must be at least 2")

	conf = &Config{Factor: math.Inf(1), Thickness: 0, JointCount: 8}
	test.That(t, conf.Validate("path"), test.ShouldNotBeNil)
}

func TestConfigChainLength(t *testing.T) {
	for _, tc := range []struct {
		joints int
		chain  int
	}{
		{2, 1},
		{3, 1},
		{7, 3},
		{8, 4},
		{9, 4},
	} {
		conf := &Config{JointCount: tc.joints}
		test.That(t, conf.ChainLength(), test.ShouldEqual, tc.chain)
	}
}

func TestNewConfigFromAttributes(t *testing.T) {
	conf, err := NewConfigFromAttributes(nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf, test.ShouldResemble, DefaultConfig())

	conf, err = NewConfigFromAttributes(utils.AttributeMap{"factor": 1.2, "joint_count": "10"})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, conf, test.ShouldResemble, &Config{Factor: 1.2, Thickness: DefaultThickness, JointCount: 10})

	_, err = NewConfigFromAttributes(utils.AttributeMap{"fctor": 1.2})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "fctor")

	_, err = NewConfigFromAttributes(utils.AttributeMap{"joint_count": 1})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "joint_count must be at least 2")
}
