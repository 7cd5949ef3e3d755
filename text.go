package condkit

import (
	"github.com/autom8ter/condkit/errors"
	"github.com/autom8ter/condkit/util"
	"github.com/samber/lo"
)

// TextOptions are the options accepted by the text condition type
type TextOptions struct {
	// AllowedValues restricts the value to an explicit set when non-empty
	AllowedValues []string `json:"allowed_values"`
	// MaxLength rejects values longer than the given rune count when positive
	MaxLength int `json:"max_length"`
}

type textType struct {
	conditionType
}

// TextType returns the condition type governing string values
func TextType() ConditionType {
	return textType{conditionType{tag: TypeText, table: textNegations}}
}

// ParseValue accepts string values only. The 'contains' comparators encode to
// LIKE templates; any pattern wrapping of the bound value is the caller's
// concern - the engine binds the value as-is.
func (t textType) ParseValue(opts Options, raw any) (any, error) {
	var o TextOptions
	if err := util.Decode(map[string]any(opts), &o); err != nil {
		return nil, errors.Wrap(err, errors.InvalidConfig, "text: invalid options")
	}
	v, ok := raw.(string)
	if !ok {
		return nil, errors.New(errors.ValueTypeMismatch, "text: unsupported value %s", util.JSONString(raw))
	}
	if o.MaxLength > 0 && len([]rune(v)) > o.MaxLength {
		return nil, errors.New(errors.ValueNotAllowed, "text: value '%s' exceeds max length %d", v, o.MaxLength)
	}
	if len(o.AllowedValues) > 0 && !lo.Contains(o.AllowedValues, v) {
		return nil, errors.New(errors.ValueNotAllowed, "text: value '%s' is not an allowed value", v)
	}
	return v, nil
}
