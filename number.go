package condkit

import (
	"encoding/json"
	"strconv"

	"github.com/autom8ter/condkit/errors"
	"github.com/autom8ter/condkit/util"
	"github.com/spf13/cast"
)

// NumberOptions are the options accepted by the number condition type
type NumberOptions struct {
	// AllowDecimal permits decimal values; only integers are accepted when false
	AllowDecimal bool `json:"allow_decimal"`
	// AllowedValues restricts the coerced value to an explicit set (a list)
	// or, for decimal values only, an inclusive range (a {min,max} mapping)
	AllowedValues any `json:"allowed_values"`
}

// valueRange is the {min,max} form of allowed_values, inclusive on both ends
type valueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type numberType struct {
	conditionType
}

// NumberType returns the condition type governing integer and decimal values
func NumberType() ConditionType {
	return numberType{conditionType{tag: TypeNumber, table: orderedNegations}}
}

// ParseValue coerces raw into an int64 or, when allow_decimal is set, a
// float64. Textual input must be consumed in full - a partial numeric prefix
// is rejected, never truncated.
func (t numberType) ParseValue(opts Options, raw any) (any, error) {
	var o NumberOptions
	if err := util.Decode(map[string]any(opts), &o); err != nil {
		return nil, errors.Wrap(err, errors.InvalidConfig, "number: invalid options")
	}
	switch v := raw.(type) {
	case string:
		return t.parseText(o, v)
	case json.Number:
		return t.parseText(o, v.String())
	case float32, float64:
		if !o.AllowDecimal {
			return nil, errors.New(errors.ValueTypeMismatch, "number: decimal value %v not permitted", v)
		}
		return t.checkDecimal(o, cast.ToFloat64(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return t.checkInteger(o, cast.ToInt64(v))
	default:
		return nil, errors.New(errors.ValueTypeMismatch, "number: unsupported value %s", util.JSONString(raw))
	}
}

func (t numberType) parseText(o NumberOptions, v string) (any, error) {
	if o.AllowDecimal {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.New(errors.ValueTypeMismatch, "number: cannot parse '%s' as a decimal", v)
		}
		return t.checkDecimal(o, f)
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, errors.New(errors.ValueTypeMismatch, "number: cannot parse '%s' as an integer", v)
	}
	return t.checkInteger(o, i)
}

func (t numberType) checkDecimal(o NumberOptions, f float64) (any, error) {
	switch allowed := o.AllowedValues.(type) {
	case nil:
		return f, nil
	case map[string]any:
		var r valueRange
		if err := util.Decode(allowed, &r); err != nil {
			return nil, errors.Wrap(err, errors.InvalidConfig, "number: invalid allowed_values range")
		}
		if f < r.Min || f > r.Max {
			return nil, errors.New(errors.ValueNotAllowed, "number: value %v outside allowed range [%v, %v]", f, r.Min, r.Max)
		}
		return f, nil
	default:
		members, err := numberSet(allowed)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			if m == f {
				return f, nil
			}
		}
		return nil, errors.New(errors.ValueNotAllowed, "number: value %v is not an allowed value", f)
	}
}

func (t numberType) checkInteger(o NumberOptions, i int64) (any, error) {
	switch allowed := o.AllowedValues.(type) {
	case nil:
		return i, nil
	case map[string]any:
		// a bound pair is only defined for decimal values
		return nil, errors.New(errors.ValueTypeMismatch, "number: range allowed_values cannot constrain integer values")
	default:
		members, err := numberSet(allowed)
		if err != nil {
			return nil, err
		}
		for _, m := range members {
			if m == float64(i) {
				return i, nil
			}
		}
		return nil, errors.New(errors.ValueNotAllowed, "number: value %d is not an allowed value", i)
	}
}

// numberSet normalizes the explicit-set form of allowed_values
func numberSet(allowed any) ([]float64, error) {
	switch members := allowed.(type) {
	case []float64:
		return members, nil
	case []int:
		out := make([]float64, 0, len(members))
		for _, m := range members {
			out = append(out, float64(m))
		}
		return out, nil
	case []any:
		out := make([]float64, 0, len(members))
		for _, m := range members {
			f, err := cast.ToFloat64E(m)
			if err != nil {
				return nil, errors.New(errors.InvalidConfig, "number: allowed_values member %s is not numeric", util.JSONString(m))
			}
			out = append(out, f)
		}
		return out, nil
	default:
		return nil, errors.New(errors.InvalidConfig, "number: unsupported allowed_values %s", util.JSONString(allowed))
	}
}
