package utils

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// AttributeMap is a convenience wrapper for pulling out
// typed information from a map.
type AttributeMap map[string]interface{}

// DecodeAttributes decodes the attribute map onto the fields of `into`, which must be a pointer to
// a struct. Fields are matched by their json tags and numeric strings are converted; fields that
// are absent from the map keep their current value, so defaults can be set before decoding.
// Attributes that match no field are reported as an error.
func DecodeAttributes(attributes AttributeMap, into interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           into,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return errors.Wrap(err, "cannot build attribute decoder")
	}
	if err := decoder.Decode(map[string]interface{}(attributes)); err != nil {
		return errors.Wrap(err, "cannot decode attributes")
	}
	return nil
}
