package condkit

import "fmt"

// Comparator is a named relational operator in the caller-facing vocabulary
type Comparator string

const (
	// Equals matches on equality
	Equals Comparator = "equals"
	// NotEquals matches on inequality
	NotEquals Comparator = "not equals"
	// GreaterThan matches on greater than
	GreaterThan Comparator = "greater than"
	// GreaterThanOrEquals matches on greater than or equal to
	GreaterThanOrEquals Comparator = "greater than or equals"
	// LessThan matches on less than
	LessThan Comparator = "less than"
	// LessThanOrEquals matches on less than or equal to
	LessThanOrEquals Comparator = "less than or equals"
	// Contains matches on text containing a substring
	Contains Comparator = "contains"
	// NotContains matches on text not containing a substring
	NotContains Comparator = "does not contain"
)

// Negation is a single negation-table entry: a comparator, its logical
// complement, and the SQL operator template it encodes to. The template
// contains exactly one 'column' placeholder and one '?' value placeholder.
type Negation struct {
	Comparator Comparator
	Negated    Comparator
	Template   string
}

// negationTable is the single source of truth for a domain's comparator
// vocabulary (its left column) and for inversion encoding.
type negationTable []Negation

func (t negationTable) comparators() []Comparator {
	comparators := make([]Comparator, 0, len(t))
	for _, n := range t {
		comparators = append(comparators, n.Comparator)
	}
	return comparators
}

func (t negationTable) lookup(c Comparator) (Negation, bool) {
	for _, n := range t {
		if n.Comparator == c {
			return n, true
		}
	}
	return Negation{}, false
}

// mustBeSymmetric asserts that every (A,B) entry has a matching (B,A) entry.
// Run once at init so an inconsistent table fails at startup instead of
// producing wrong SQL.
func (t negationTable) mustBeSymmetric(tag Kind) negationTable {
	for _, n := range t {
		mirror, ok := t.lookup(n.Negated)
		if !ok {
			panic(fmt.Sprintf("condkit: %s negation table: '%s' negates to unregistered '%s'", tag, n.Comparator, n.Negated))
		}
		if mirror.Negated != n.Comparator {
			panic(fmt.Sprintf("condkit: %s negation table: '%s' and '%s' are not mutual negations", tag, n.Comparator, n.Negated))
		}
	}
	return t
}

var orderedNegations = negationTable{
	{Equals, NotEquals, "column = ?"},
	{NotEquals, Equals, "column != ?"},
	{GreaterThan, LessThanOrEquals, "column > ?"},
	{GreaterThanOrEquals, LessThan, "column >= ?"},
	{LessThan, GreaterThanOrEquals, "column < ?"},
	{LessThanOrEquals, GreaterThan, "column <= ?"},
}.mustBeSymmetric("ordered")

var textNegations = negationTable{
	{Equals, NotEquals, "column = ?"},
	{NotEquals, Equals, "column != ?"},
	{Contains, NotContains, "column LIKE ?"},
	{NotContains, Contains, "column NOT LIKE ?"},
}.mustBeSymmetric(TypeText)

var booleanNegations = negationTable{
	{Equals, NotEquals, "column = ?"},
	{NotEquals, Equals, "column != ?"},
}.mustBeSymmetric(TypeBoolean)
