package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xy-planning-network/display"
	"gopkg.in/yaml.v3"
)

var _ display.Catalog = (*Catalog)(nil)

// Code is the value type of every enumeration declared in a catalog.
type Code int64

// File is the document a catalog is decoded from.
type File struct {
	Enums []EnumSpec `json:"enums" yaml:"enums"`
}

// An EnumSpec declares a single enumeration.
type EnumSpec struct {
	Name    string       `json:"name" yaml:"name"`
	Members []MemberSpec `json:"members" yaml:"members"`
}

// A MemberSpec declares a single member of an enumeration.
// Display is optional.
type MemberSpec struct {
	Symbol  string           `json:"symbol" yaml:"symbol"`
	Value   Code             `json:"value" yaml:"value"`
	Display *display.Display `json:"display,omitempty" yaml:"display,omitempty"`
}

// A Catalog holds the enumerations declared in a File.
type Catalog struct {
	names  []string
	tables map[string]*display.Table[Code]
}

// New constructs a *Catalog from f.
//
// If two enumerations share a name, New returns display.ErrExists.
// Any error constructing an enumeration's table returns as is.
func New(f File) (*Catalog, error) {
	c := &Catalog{tables: make(map[string]*display.Table[Code], len(f.Enums))}
	for _, spec := range f.Enums {
		if _, ok := c.tables[spec.Name]; ok {
			return nil, fmt.Errorf("%w: enumeration %s is declared twice", display.ErrExists, spec.Name)
		}

		members := make([]display.Member[Code], len(spec.Members))
		for i, m := range spec.Members {
			if m.Display != nil {
				members[i] = display.Declare(m.Value, m.Symbol, *m.Display)
				continue
			}

			members[i] = display.Declare(m.Value, m.Symbol)
		}

		t, err := display.NewTable(spec.Name, members...)
		if err != nil {
			return nil, err
		}

		c.names = append(c.names, spec.Name)
		c.tables[spec.Name] = t
	}

	return c, nil
}

// LoadYAML decodes data as a YAML File and constructs a *Catalog from it.
// Unknown fields are rejected with display.ErrNotValid.
func LoadYAML(data []byte) (*Catalog, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", display.ErrNotValid, err)
	}

	return New(f)
}

// LoadJSON decodes data as a JSON File and constructs a *Catalog from it.
// Unknown fields are rejected with display.ErrNotValid.
func LoadJSON(data []byte) (*Catalog, error) {
	var f File
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %s", display.ErrNotValid, err)
	}

	return New(f)
}

// LoadFile reads the file at path and decodes it as JSON if its extension is .json,
// otherwise as YAML.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(data)
	}

	return LoadYAML(data)
}

// Table returns the table of the enumeration named name.
// If none is declared, Table returns display.ErrNotExist.
func (c *Catalog) Table(name string) (*display.Table[Code], error) {
	t, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: no enumeration named %q", display.ErrNotExist, name)
	}

	return t, nil
}

// Lookup implements display.Catalog.
func (c *Catalog) Lookup(name string) (display.Enumeration, error) {
	t, err := c.Table(name)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Names lists enumerations in the order they are declared.
//
// Names implements display.Catalog.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Enumerations returns every enumeration in the order they are declared.
func (c *Catalog) Enumerations() []display.Enumeration {
	out := make([]display.Enumeration, len(c.names))
	for i, name := range c.names {
		out[i] = c.tables[name]
	}

	return out
}
