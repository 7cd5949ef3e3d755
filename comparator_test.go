package condkit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegationTables(t *testing.T) {
	tables := map[Kind]negationTable{
		TypeNumber:  orderedNegations,
		TypeText:    textNegations,
		TypeDate:    orderedNegations,
		TypeBoolean: booleanNegations,
	}
	t.Run("symmetry", func(t *testing.T) {
		for kind, table := range tables {
			for _, n := range table {
				mirror, ok := table.lookup(n.Negated)
				assert.True(t, ok, "%s: '%s' has no mirror entry", kind, n.Comparator)
				assert.Equal(t, n.Comparator, mirror.Negated, "%s: '%s' and '%s' are not mutual negations", kind, n.Comparator, n.Negated)
			}
		}
	})
	t.Run("vocabulary matches left column", func(t *testing.T) {
		for _, ctype := range []ConditionType{NumberType(), TextType(), DateType(), BooleanType()} {
			table := tables[ctype.Tag()]
			assert.Equal(t, table.comparators(), ctype.Comparators())
		}
	})
	t.Run("templates carry one column and one value placeholder", func(t *testing.T) {
		for kind, table := range tables {
			for _, n := range table {
				assert.Equal(t, 1, strings.Count(n.Template, ColumnPlaceholder), "%s: %s", kind, n.Template)
				assert.Equal(t, 1, strings.Count(n.Template, "?"), "%s: %s", kind, n.Template)
			}
		}
	})
	t.Run("lookup miss", func(t *testing.T) {
		_, ok := booleanNegations.lookup(GreaterThan)
		assert.False(t, ok)
	})
	t.Run("asymmetric table panics at init", func(t *testing.T) {
		assert.Panics(t, func() {
			negationTable{
				{Equals, NotEquals, "column = ?"},
			}.mustBeSymmetric(TypeBoolean)
		})
		assert.Panics(t, func() {
			negationTable{
				{Equals, NotEquals, "column = ?"},
				{NotEquals, GreaterThan, "column != ?"},
				{GreaterThan, NotEquals, "column > ?"},
			}.mustBeSymmetric(TypeNumber)
		})
	})
}

func TestInverseEncodingEquivalence(t *testing.T) {
	// encoding comparator A with inverse=true must equal encoding its
	// declared negation with inverse=false, for any fixed value
	values := map[Kind]any{
		TypeNumber:  float64(4.5),
		TypeText:    "widget",
		TypeBoolean: true,
	}
	for _, ctype := range []ConditionType{NumberType(), TextType(), BooleanType()} {
		for _, comparator := range ctype.Comparators() {
			n, ok := ctype.Negation(comparator)
			assert.True(t, ok)
			inverted := Condition{
				Type:       ctype.Tag(),
				Column:     "c",
				Comparator: comparator,
				Value:      values[ctype.Tag()],
				Inverse:    true,
				ctype:      ctype,
			}
			negated := Condition{
				Type:       ctype.Tag(),
				Column:     "c",
				Comparator: n.Negated,
				Value:      values[ctype.Tag()],
				Inverse:    false,
				ctype:      ctype,
			}
			assert.Equal(t, negated.Encode(), inverted.Encode(), "%s: '%s'", ctype.Tag(), comparator)
		}
	}
}
