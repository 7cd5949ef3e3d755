package condkit

// Kind identifies the value domain a condition type governs
type Kind string

const (
	// TypeNumber governs integer and decimal values
	TypeNumber Kind = "number"
	// TypeText governs string values
	TypeText Kind = "text"
	// TypeDate governs timestamp values
	TypeDate Kind = "date"
	// TypeBoolean governs true/false values
	TypeBoolean Kind = "boolean"
)

// Options are type-specific settings attached to a whitelist entry. Their
// meaning is defined entirely by the condition type that decodes them.
type Options map[string]any

// ConditionType is the pluggable contract implemented once per value domain
type ConditionType interface {
	// Tag returns the stable identifier for the domain
	Tag() Kind
	// Comparators returns the ordered comparator vocabulary; it is always
	// the left column of the domain's negation table
	Comparators() []Comparator
	// Negation returns the domain's negation-table entry for the given comparator
	Negation(c Comparator) (Negation, bool)
	// ParseValue coerces the raw value into the domain under the given
	// options. It is pure and deterministic; the error carries one of the
	// errors package codes.
	ParseValue(opts Options, raw any) (any, error)
}

// conditionType carries the pieces every domain shares: its tag and its
// negation table.
type conditionType struct {
	tag   Kind
	table negationTable
}

func (c conditionType) Tag() Kind {
	return c.tag
}

func (c conditionType) Comparators() []Comparator {
	return c.table.comparators()
}

func (c conditionType) Negation(cmp Comparator) (Negation, bool) {
	return c.table.lookup(cmp)
}

// Registry is an immutable collection of condition types keyed by tag. It is
// constructed once at process start and passed by reference into parsing -
// there is no mutable global registry.
type Registry struct {
	types map[Kind]ConditionType
}

// NewRegistry builds a registry from the given condition types. Later types
// with a duplicate tag overwrite earlier ones.
func NewRegistry(types ...ConditionType) Registry {
	m := make(map[Kind]ConditionType, len(types))
	for _, t := range types {
		m[t.Tag()] = t
	}
	return Registry{types: m}
}

// DefaultRegistry returns a registry holding the built-in number, text, date
// and boolean condition types.
func DefaultRegistry() Registry {
	return NewRegistry(
		NumberType(),
		TextType(),
		DateType(),
		BooleanType(),
	)
}

// Resolve returns the condition type registered for the given tag
func (r Registry) Resolve(tag Kind) (ConditionType, bool) {
	t, ok := r.types[tag]
	return t, ok
}
