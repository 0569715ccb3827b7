package display

import (
	"encoding/json"
)

var (
	_ Descriptor = Annotation[int]{}
)

// A Descriptor exposes the display metadata of a single enum value
// without requiring its concrete type.
//
// [Annotation] is the implementation of Descriptor.
type Descriptor interface {
	// Enum is the name of the enumeration the value belongs to.
	Enum() string

	// Name is the display name, falling back to the symbolic name.
	Name() string

	// ShortName is the short display name, falling back to Name.
	ShortName() string

	GroupName() string
	Description() string
	Order() int

	// Underlying is the integer representation of the value.
	Underlying() int64

	// String is the symbolic name of the value.
	String() string

	json.Marshaler
}

// An Annotation wraps a single value of an Enum with the Display declared for it.
//
// The metadata is resolved once, when the Annotation is constructed with [*Table.Wrap],
// and never changes afterwards.
//
// The zero-value Annotation wraps no value at all.
// Every accessor on such an Annotation returns its fallback:
// the empty string, zero or the zero value of E.
type Annotation[E Enum] struct {
	enum    string
	value   E
	present bool
	symbol  string
	display Display
}

// Wrap constructs an Annotation for v.
//
// v need not be a declared member of the *Table,
// in which case its symbolic name is v formatted as a decimal number
// and no Display applies.
func (t *Table[E]) Wrap(v E) Annotation[E] {
	a := Annotation[E]{enum: t.name, value: v, present: true}
	m, ok := t.member(v)
	if !ok {
		a.symbol = t.Symbol(v)
		return a
	}

	a.symbol = m.Symbol
	a.display, _ = m.Display()

	return a
}

// WrapPtr constructs an Annotation for *v.
// If v is nil, the Annotation wraps no value.
func (t *Table[E]) WrapPtr(v *E) Annotation[E] {
	if v == nil {
		return Annotation[E]{enum: t.name}
	}

	return t.Wrap(*v)
}

func (a Annotation[E]) Enum() string { return a.enum }

// Present asserts whether the Annotation wraps a value.
func (a Annotation[E]) Present() bool { return a.present }

// Value returns the wrapped value or the zero value of E.
func (a Annotation[E]) Value() E { return a.value }

// Underlying returns the wrapped value as an int64 or 0 if no value is wrapped.
func (a Annotation[E]) Underlying() int64 {
	if !a.present {
		return 0
	}

	return int64(a.value)
}

// Name returns the declared display name.
// If none is declared, Name returns the symbolic name of the value.
func (a Annotation[E]) Name() string {
	if a.display.Name != "" {
		return a.display.Name
	}

	return a.symbol
}

// ShortName returns the declared short name.
// If none is declared, ShortName returns Name.
func (a Annotation[E]) ShortName() string {
	if a.display.ShortName != "" {
		return a.display.ShortName
	}

	return a.Name()
}

// GroupName returns the declared group name or the empty string.
func (a Annotation[E]) GroupName() string { return a.display.GroupName }

// Description returns the declared description or the empty string.
func (a Annotation[E]) Description() string { return a.display.Description }

// Order returns the declared order or 0.
func (a Annotation[E]) Order() int { return a.display.Order }

// String returns the symbolic name of the value
// or the empty string if no value is wrapped.
//
// String implements [fmt.Stringer].
func (a Annotation[E]) String() string { return a.symbol }

// Equal asserts whether a and other wrap the same value.
// An Annotation wrapping no value equals nothing.
func (a Annotation[E]) Equal(other Annotation[E]) bool {
	return a.present && other.present && a.value == other.value
}

type annotationJSON struct {
	Enum        string `json:"enum"`
	Symbol      string `json:"symbol"`
	Value       int64  `json:"value"`
	Name        string `json:"name"`
	ShortName   string `json:"shortName"`
	GroupName   string `json:"groupName,omitempty"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
}

// MarshalJSON renders the Annotation with every fallback applied.
// An Annotation wrapping no value renders as null.
//
// MarshalJSON implements [encoding/json.Marshaler].
func (a Annotation[E]) MarshalJSON() ([]byte, error) {
	if !a.present {
		return []byte("null"), nil
	}

	return json.Marshal(annotationJSON{
		Enum:        a.enum,
		Symbol:      a.symbol,
		Value:       a.Underlying(),
		Name:        a.Name(),
		ShortName:   a.ShortName(),
		GroupName:   a.GroupName(),
		Description: a.Description(),
		Order:       a.Order(),
	})
}
