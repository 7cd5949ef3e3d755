package condkit

import (
	"fmt"
	"strings"
)

// ColumnPlaceholder is the token in an operator template standing in for the
// column reference. The '?' token stands in for the bound value, which always
// travels as a separate parameter and is never interpolated into the template.
const ColumnPlaceholder = "column"

// Condition is a single validated filter predicate. Conditions are only ever
// produced by Parser.Parse - a Condition with an invalid comparator or value
// is never exposed to the caller.
type Condition struct {
	// Type is the tag of the condition type that validated the value
	Type Kind `json:"type"`
	// Column is the whitelisted column the predicate applies to
	Column string `json:"column"`
	// Comparator is one of the condition type's declared comparators
	Comparator Comparator `json:"comparator"`
	// Value is the coerced, domain-typed value
	Value any `json:"value"`
	// Inverse requests the logical negation of the predicate
	Inverse bool `json:"inverse"`

	ctype ConditionType
}

// Fragment is a parameterized query fragment: an operator template plus the
// value to bind to its '?' placeholder.
type Fragment struct {
	Template string `json:"template"`
	Value    any    `json:"value"`
}

// Clause substitutes the given column name for the template's column
// placeholder. Column names come from the whitelist, never from caller input,
// so the substitution introduces no untrusted data.
func (f Fragment) Clause(column string) string {
	return strings.Replace(f.Template, ColumnPlaceholder, column, 1)
}

// Encode renders the condition as a parameterized fragment. An inverse
// condition is encoded with the operator template of the comparator's
// declared complement - never by wrapping the template in NOT, which is not
// equivalent under SQL three-valued logic when the column is NULL.
//
// Encode is pure: encoding the same condition twice yields the same fragment.
// A comparator missing from the negation table is an invariant violation
// (Parse guarantees membership) and panics.
func (c Condition) Encode() Fragment {
	if c.ctype == nil {
		panic("condkit: condition was not produced by a parser")
	}
	n, ok := c.ctype.Negation(c.Comparator)
	if !ok {
		panic(fmt.Sprintf("condkit: comparator '%s' missing from %s negation table", c.Comparator, c.Type))
	}
	if !c.Inverse {
		return Fragment{Template: n.Template, Value: c.Value}
	}
	negated, ok := c.ctype.Negation(n.Negated)
	if !ok {
		panic(fmt.Sprintf("condkit: comparator '%s' missing from %s negation table", n.Negated, c.Type))
	}
	return Fragment{Template: negated.Template, Value: c.Value}
}
