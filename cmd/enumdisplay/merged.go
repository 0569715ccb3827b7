package main

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/display"
)

// merged looks up enumerations in each display.Catalog in turn.
// Earlier Catalogs shadow later ones declaring the same name.
type merged []display.Catalog

func (m merged) Lookup(name string) (display.Enumeration, error) {
	for _, c := range m {
		e, err := c.Lookup(name)
		if err == nil {
			return e, nil
		}

		if !errors.Is(err, display.ErrNotExist) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: no enumeration named %q", display.ErrNotExist, name)
}

func (m merged) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range m {
		for _, name := range c.Names() {
			if seen[name] {
				continue
			}

			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}
