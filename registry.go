package display

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

//go:generate mockgen -destination=internal/mocks/mock_catalog.go -package=mocks github.com/xy-planning-network/display Catalog,Enumeration

// An Enumeration exposes a *Table without requiring the concrete type of its Enum.
type Enumeration interface {
	EnumName() string
	Len() int
	Descriptors() []Descriptor
	DescribeSymbol(symbol string) (Descriptor, error)
}

// A Catalog looks up Enumerations by name.
type Catalog interface {
	Lookup(name string) (Enumeration, error)
	Names() []string
}

type registered interface {
	Enumeration
	describeAny(v any) (Descriptor, bool)
}

type registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]registered
	byName map[string]registered
}

var defaultRegistry = &registry{
	byType: make(map[reflect.Type]registered),
	byName: make(map[string]registered),
}

// Register makes t the *Table for E throughout package display.
//
// If a *Table is already registered for E or under the same name,
// Register returns ErrExists.
func Register[E Enum](t *Table[E]) error {
	typ := reflect.TypeFor[E]()
	if err := defaultRegistry.add(typ, t); err != nil {
		return err
	}

	logger().Debug(
		"registered enumeration",
		LogKindKey, RegistryLogKind,
		"enum", t.EnumName(),
		"type", typ.String(),
		"members", t.Len(),
	)

	return nil
}

// TableFor returns the *Table registered for E.
// If none is, TableFor returns ErrUnsupportedType.
func TableFor[E Enum]() (*Table[E], error) {
	typ := reflect.TypeFor[E]()
	r, ok := defaultRegistry.byTypeOf(typ)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
	}

	return r.(*Table[E]), nil
}

// Describe wraps v in a Descriptor using the *Table registered for the type of v.
// v may also be a pointer to a registered type;
// a nil pointer produces a Descriptor wrapping no value.
//
// If the type of v - e.g., a plain int - has no registered *Table,
// Describe returns ErrUnsupportedType naming that type.
func Describe(v any) (Descriptor, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrUnsupportedType)
	}

	typ := reflect.TypeOf(v)
	key := typ
	if key.Kind() == reflect.Pointer {
		key = key.Elem()
	}

	if r, ok := defaultRegistry.byTypeOf(key); ok {
		if d, ok := r.describeAny(v); ok {
			return d, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
}

// Lookup returns the Enumeration registered under name.
// If none is, Lookup returns ErrNotExist.
func Lookup(name string) (Enumeration, error) { return defaultRegistry.Lookup(name) }

// Names lists the names of every registered Enumeration, sorted.
func Names() []string { return defaultRegistry.Names() }

// Registered exposes every registered Enumeration as a Catalog.
func Registered() Catalog { return defaultRegistry }

func (r *registry) add(typ reflect.Type, e registered) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byType[typ]; ok {
		return fmt.Errorf("%w: %s is already registered as %s", ErrExists, typ, existing.EnumName())
	}

	if _, ok := r.byName[e.EnumName()]; ok {
		return fmt.Errorf("%w: an enumeration named %s is already registered", ErrExists, e.EnumName())
	}

	r.byType[typ] = e
	r.byName[e.EnumName()] = e

	return nil
}

func (r *registry) remove(typ reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.byType[typ]; ok {
		delete(r.byName, e.EnumName())
		delete(r.byType, typ)
	}
}

func (r *registry) byTypeOf(typ reflect.Type) (registered, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byType[typ]
	return e, ok
}

func (r *registry) Lookup(name string) (Enumeration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: no enumeration named %q", ErrNotExist, name)
	}

	return e, nil
}

func (r *registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
