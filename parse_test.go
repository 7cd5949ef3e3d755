package condkit

import (
	"strings"
	"testing"

	"github.com/autom8ter/condkit/errors"
	"github.com/stretchr/testify/assert"
)

func testParser(t *testing.T) *Parser {
	t.Helper()
	whitelist := NewWhitelistBuilder().
		Number(Options{"allow_decimal": true}, "rating").
		Number(Options{"allowed_values": []any{1, 2, 3}}, "count").
		Text(Options{"max_length": 64}, "name", "description").
		Date(nil, "created_at").
		Boolean("active").
		Whitelist()
	parser, err := NewParser(DefaultRegistry(), whitelist)
	assert.Nil(t, err)
	return parser
}

func TestParse(t *testing.T) {
	parser := testParser(t)
	t.Run("unknown column", func(t *testing.T) {
		_, err := parser.Parse(Input{Column: "password", Comparator: Equals, Value: "x"})
		assert.True(t, errors.Is(err, errors.UnknownColumn))
	})
	t.Run("valid condition", func(t *testing.T) {
		condition, err := parser.Parse(Input{Column: "rating", Comparator: GreaterThan, Value: "4.5"})
		assert.Nil(t, err)
		assert.Equal(t, TypeNumber, condition.Type)
		assert.Equal(t, "rating", condition.Column)
		assert.Equal(t, GreaterThan, condition.Comparator)
		assert.Equal(t, 4.5, condition.Value)
		assert.False(t, condition.Inverse)
	})
	t.Run("inverse carried through unchanged", func(t *testing.T) {
		condition, err := parser.Parse(Input{Column: "rating", Comparator: GreaterThan, Value: "4.5", Inverse: true})
		assert.Nil(t, err)
		assert.True(t, condition.Inverse)
	})
	t.Run("unknown comparator", func(t *testing.T) {
		_, err := parser.Parse(Input{Column: "rating", Comparator: Contains, Value: "4.5"})
		assert.True(t, errors.Is(err, errors.UnknownComparator))
	})
	t.Run("comparator match is case sensitive", func(t *testing.T) {
		_, err := parser.Parse(Input{Column: "rating", Comparator: "Greater Than", Value: "4.5"})
		assert.True(t, errors.Is(err, errors.UnknownComparator))
	})
	t.Run("value not allowed", func(t *testing.T) {
		_, err := parser.Parse(Input{Column: "count", Comparator: Equals, Value: 5})
		assert.True(t, errors.Is(err, errors.ValueNotAllowed))
	})
	t.Run("value error propagated verbatim", func(t *testing.T) {
		_, err := parser.Parse(Input{Column: "rating", Comparator: GreaterThan, Value: "abc"})
		assert.True(t, errors.Is(err, errors.ValueTypeMismatch))
		assert.Contains(t, errors.Extract(err).Messages[0], "cannot parse")
	})
	t.Run("comparator failure outranks value failure", func(t *testing.T) {
		_, err := parser.Parse(Input{Column: "rating", Comparator: Contains, Value: "abc"})
		assert.True(t, errors.Is(err, errors.UnknownComparator))
	})
	t.Run("error context names the column", func(t *testing.T) {
		_, err := parser.Parse(Input{Column: "count", Comparator: Equals, Value: 5})
		assert.Contains(t, strings.Join(errors.Extract(err).Messages, " "), "count")
	})
	t.Run("text condition", func(t *testing.T) {
		condition, err := parser.Parse(Input{Column: "name", Comparator: Contains, Value: "wid"})
		assert.Nil(t, err)
		assert.Equal(t, TypeText, condition.Type)
		assert.Equal(t, "wid", condition.Value)
	})
	t.Run("boolean condition", func(t *testing.T) {
		condition, err := parser.Parse(Input{Column: "active", Comparator: Equals, Value: "true"})
		assert.Nil(t, err)
		assert.Equal(t, true, condition.Value)
	})
	t.Run("date condition", func(t *testing.T) {
		condition, err := parser.Parse(Input{Column: "created_at", Comparator: LessThan, Value: "2023-01-01T00:00:00Z"})
		assert.Nil(t, err)
		assert.Equal(t, TypeDate, condition.Type)
	})
}

func TestNewParser(t *testing.T) {
	t.Run("rejects duplicate column membership", func(t *testing.T) {
		whitelist := NewWhitelistBuilder().
			Number(nil, "rating").
			Text(nil, "rating").
			Whitelist()
		_, err := NewParser(DefaultRegistry(), whitelist)
		assert.True(t, errors.Is(err, errors.InvalidConfig))
	})
	t.Run("rejects unregistered type", func(t *testing.T) {
		whitelist := Whitelist{{Type: "geo", Keys: []string{"location"}}}
		_, err := NewParser(DefaultRegistry(), whitelist)
		assert.True(t, errors.Is(err, errors.InvalidConfig))
	})
	t.Run("rejects empty key set", func(t *testing.T) {
		whitelist := Whitelist{{Type: TypeNumber}}
		_, err := NewParser(DefaultRegistry(), whitelist)
		assert.True(t, errors.Is(err, errors.InvalidConfig))
	})
}
