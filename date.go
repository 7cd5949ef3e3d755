package condkit

import (
	"time"

	"github.com/autom8ter/condkit/errors"
	"github.com/autom8ter/condkit/util"
	"github.com/spf13/cast"
)

// DateOptions are the options accepted by the date condition type
type DateOptions struct {
	// Layout is the exact time layout textual values must match. When empty,
	// common layouts (RFC 3339, dates, timestamps) are tried in order.
	Layout string `json:"layout"`
}

type dateType struct {
	conditionType
}

// DateType returns the condition type governing timestamp values
func DateType() ConditionType {
	return dateType{conditionType{tag: TypeDate, table: orderedNegations}}
}

// ParseValue accepts time.Time values as-is and parses textual values with
// the configured layout. allowed_values has no defined meaning for dates and
// is ignored.
func (t dateType) ParseValue(opts Options, raw any) (any, error) {
	var o DateOptions
	if err := util.Decode(map[string]any(opts), &o); err != nil {
		return nil, errors.Wrap(err, errors.InvalidConfig, "date: invalid options")
	}
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		if o.Layout != "" {
			parsed, err := time.Parse(o.Layout, v)
			if err != nil {
				return nil, errors.New(errors.ValueTypeMismatch, "date: cannot parse '%s' with layout '%s'", v, o.Layout)
			}
			return parsed, nil
		}
		parsed, err := cast.ToTimeE(v)
		if err != nil {
			return nil, errors.New(errors.ValueTypeMismatch, "date: cannot parse '%s'", v)
		}
		return parsed, nil
	default:
		return nil, errors.New(errors.ValueTypeMismatch, "date: unsupported value %s", util.JSONString(raw))
	}
}
