package condkit

import (
	"github.com/autom8ter/condkit/errors"
	"github.com/autom8ter/condkit/util"
	"github.com/samber/lo"
)

// Input is a single predicate description supplied by the caller
type Input struct {
	// Column is the column the predicate applies to
	Column string `json:"column"`
	// Comparator is the caller-facing comparator name
	Comparator Comparator `json:"comparator"`
	// Value is the raw value to validate and coerce
	Value any `json:"value"`
	// Inverse requests the logical negation of the predicate
	Inverse bool `json:"inverse"`
}

// Parser validates predicate descriptions against a whitelist. A Parser is
// immutable and safe for concurrent use.
type Parser struct {
	registry  Registry
	whitelist Whitelist
}

// NewParser creates a Parser over the given registry and whitelist. The
// whitelist is validated once here so Parse never observes a malformed entry.
func NewParser(registry Registry, whitelist Whitelist) (*Parser, error) {
	if err := whitelist.Validate(registry); err != nil {
		return nil, err
	}
	return &Parser{registry: registry, whitelist: whitelist}, nil
}

// Parse resolves the config governing the input's column, coerces the raw
// value through the config's condition type and validates the comparator
// against the type's vocabulary (exact, case-sensitive match). A Condition is
// returned only when both checks pass - there are no partial results. When
// both fail, the comparator error is reported: the structural validity of the
// predicate shape is surfaced before the semantic validity of its value.
func (p *Parser) Parse(input Input) (Condition, error) {
	config, ok := p.whitelist.resolve(input.Column)
	if !ok {
		return Condition{}, errors.New(errors.UnknownColumn, "unknown column: '%s'", input.Column)
	}
	ctype, ok := p.registry.Resolve(config.Type)
	if !ok {
		return Condition{}, errors.New(errors.Internal, "no condition type registered for '%s'", config.Type)
	}
	value, valueErr := ctype.ParseValue(config.Options, input.Value)
	if !lo.Contains(ctype.Comparators(), input.Comparator) {
		return Condition{}, errors.New(errors.UnknownComparator, "%s: invalid comparator '%s' for type '%s'", input.Column, input.Comparator, ctype.Tag())
	}
	if valueErr != nil {
		return Condition{}, errors.Wrap(valueErr, 0, "%s: invalid value %s", input.Column, util.JSONString(input.Value))
	}
	return Condition{
		Type:       ctype.Tag(),
		Column:     input.Column,
		Comparator: input.Comparator,
		Value:      value,
		Inverse:    input.Inverse,
		ctype:      ctype,
	}, nil
}
