package style

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnknownProperty is returned by strict mutators when a property key is
// not in the active catalog. The forgiving mutators silently no-op instead.
var ErrUnknownProperty = errors.New("unknown property")

// PropertySpec declares one editable property: its value kind and the
// default seeded when the property is first added to a keyframe pair.
type PropertySpec struct {
	Name    string
	Kind    ValueKind
	Default Value
}

// Catalog is the set of properties the editor exposes. Lookups fall back
// to the built-in catalog when no consumer catalog is registered.
type Catalog struct {
	specs map[string]PropertySpec
}

// NewCatalog builds a catalog from the given specs. Later specs with the
// same name replace earlier ones.
func NewCatalog(specs []PropertySpec) *Catalog {
	c := &Catalog{specs: make(map[string]PropertySpec, len(specs))}
	for _, s := range specs {
		c.specs[s.Name] = s
	}
	return c
}

// Lookup returns the spec for a property name.
func (c *Catalog) Lookup(name string) (PropertySpec, bool) {
	s, ok := c.specs[name]
	return s, ok
}

// Knows reports whether the catalog recognizes the property name.
func (c *Catalog) Knows(name string) bool {
	_, ok := c.specs[name]
	return ok
}

// Names returns all property names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.specs))
	for n := range c.specs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Extend returns a new catalog with the given specs added on top of c.
func (c *Catalog) Extend(specs []PropertySpec) *Catalog {
	out := &Catalog{specs: make(map[string]PropertySpec, len(c.specs)+len(specs))}
	for n, s := range c.specs {
		out.specs[n] = s
	}
	for _, s := range specs {
		out.specs[s.Name] = s
	}
	return out
}

// registeredCatalog holds the consumer's catalog, if any.
// If nil, lookups fall back to the built-in defaults (defaults.go).
var registeredCatalog *Catalog

// SetCatalog registers the consumer's property catalog. Call at startup
// before any edits occur; pass nil to revert to the built-in catalog.
func SetCatalog(c *Catalog) {
	registeredCatalog = c
}

// ActiveCatalog returns the registered catalog or the built-in default.
func ActiveCatalog() *Catalog {
	if registeredCatalog != nil {
		return registeredCatalog
	}
	return builtinCatalog
}

// catalogFile mirrors the [property.<name>] tables of a catalog TOML
// document:
//
//	[property.opacity]
//	kind = "percent"
//	default = "100%"
type catalogFile struct {
	Property map[string]catalogEntry `toml:"property"`
}

type catalogEntry struct {
	Kind    string `toml:"kind"`
	Default string `toml:"default"`
}

// LoadCatalog parses a catalog TOML document into a Catalog. Entries with
// an unknown kind name are rejected rather than guessed at.
func LoadCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	specs := make([]PropertySpec, 0, len(file.Property))
	for name, entry := range file.Property {
		kind, ok := ParseValueKind(entry.Kind)
		if !ok {
			return nil, fmt.Errorf("property %q: unknown kind %q", name, entry.Kind)
		}
		def := ParseValue(entry.Default)
		if kind != KindRecord && def.Kind != kind {
			// Trust the declared kind over the inferred one; keep the raw.
			def = Value{Kind: kind, Raw: entry.Default, Number: def.Number, Unit: def.Unit, Keyword: def.Keyword}
		}
		specs = append(specs, PropertySpec{Name: name, Kind: kind, Default: def})
	}
	return NewCatalog(specs), nil
}
