package condkit

import (
	"strconv"

	"github.com/autom8ter/condkit/errors"
	"github.com/autom8ter/condkit/util"
)

type booleanType struct {
	conditionType
}

// BooleanType returns the condition type governing true/false values. It
// accepts no options.
func BooleanType() ConditionType {
	return booleanType{conditionType{tag: TypeBoolean, table: booleanNegations}}
}

// ParseValue accepts bool values as-is and textual values in the forms
// strconv.ParseBool recognizes.
func (t booleanType) ParseValue(opts Options, raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New(errors.ValueTypeMismatch, "boolean: cannot parse '%s'", v)
		}
		return b, nil
	default:
		return nil, errors.New(errors.ValueTypeMismatch, "boolean: unsupported value %s", util.JSONString(raw))
	}
}
