package condkit

import (
	"github.com/autom8ter/condkit/errors"
	"github.com/autom8ter/condkit/util"
	"github.com/ghodss/yaml"
	"github.com/samber/lo"
)

// Config is a whitelist entry binding a set of column names to a condition
// type and its options. Configs are constructed once and read-only thereafter.
type Config struct {
	// Type is the tag of the condition type governing this entry
	Type Kind `json:"type" validate:"required"`
	// Keys are the column names this entry governs
	Keys []string `json:"keys" validate:"required,min=1"`
	// Options are type-specific settings, decoded by the condition type
	Options Options `json:"options"`
}

// Whitelist is the ordered list of configs consulted when parsing a predicate
type Whitelist []Config

// Validate checks every entry against the registry. A column appearing in
// more than one entry's key set is a caller configuration error.
func (w Whitelist) Validate(r Registry) error {
	seen := map[string]int{}
	for i, c := range w {
		if err := util.ValidateStruct(c); err != nil {
			return errors.Wrap(err, errors.InvalidConfig, "config[%d]", i)
		}
		if _, ok := r.Resolve(c.Type); !ok {
			return errors.New(errors.InvalidConfig, "config[%d]: unknown condition type: '%s'", i, c.Type)
		}
		for _, k := range c.Keys {
			if j, ok := seen[k]; ok {
				return errors.New(errors.InvalidConfig, "config[%d]: column '%s' already governed by config[%d]", i, k, j)
			}
			seen[k] = i
		}
	}
	return nil
}

// resolve returns the first config whose key set contains the column
func (w Whitelist) resolve(column string) (Config, bool) {
	return lo.Find([]Config(w), func(c Config) bool {
		return lo.Contains(c.Keys, column)
	})
}

// LoadWhitelist parses a YAML or JSON whitelist definition and validates it
// against the registry.
func LoadWhitelist(r Registry, content []byte) (Whitelist, error) {
	var w Whitelist
	if err := yaml.Unmarshal(content, &w); err != nil {
		return nil, errors.Wrap(err, errors.InvalidConfig, "failed to parse whitelist")
	}
	if err := w.Validate(r); err != nil {
		return nil, err
	}
	return w, nil
}

// WhitelistBuilder is a utility for creating whitelists via chainable methods
type WhitelistBuilder struct {
	whitelist Whitelist
}

// NewWhitelistBuilder creates a new WhitelistBuilder instance
func NewWhitelistBuilder() *WhitelistBuilder {
	return &WhitelistBuilder{}
}

// Config adds a raw config entry to the whitelist
func (b *WhitelistBuilder) Config(c Config) *WhitelistBuilder {
	b.whitelist = append(b.whitelist, c)
	return b
}

// Number adds a number entry governing the given columns
func (b *WhitelistBuilder) Number(opts Options, keys ...string) *WhitelistBuilder {
	return b.Config(Config{Type: TypeNumber, Keys: keys, Options: opts})
}

// Text adds a text entry governing the given columns
func (b *WhitelistBuilder) Text(opts Options, keys ...string) *WhitelistBuilder {
	return b.Config(Config{Type: TypeText, Keys: keys, Options: opts})
}

// Date adds a date entry governing the given columns
func (b *WhitelistBuilder) Date(opts Options, keys ...string) *WhitelistBuilder {
	return b.Config(Config{Type: TypeDate, Keys: keys, Options: opts})
}

// Boolean adds a boolean entry governing the given columns
func (b *WhitelistBuilder) Boolean(keys ...string) *WhitelistBuilder {
	return b.Config(Config{Type: TypeBoolean, Keys: keys})
}

// Whitelist returns the built whitelist
func (b *WhitelistBuilder) Whitelist() Whitelist {
	return b.whitelist
}
