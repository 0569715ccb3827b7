package display

import (
	"cmp"
	"slices"
)

// A Predicate reports whether an Annotation ought to be kept.
type Predicate[E Enum] func(Annotation[E]) bool

// Displays returns an Annotation for every declared member,
// sorted ascending by Order.
// Members with the same Order keep the order they are declared in.
//
// Displays drops any Annotation rejected by one of filters before sorting.
// A nil filter accepts everything.
func (t *Table[E]) Displays(filters ...Predicate[E]) []Annotation[E] {
	out := make([]Annotation[E], 0, len(t.members))
	for _, m := range t.members {
		a := t.Wrap(m.Value)
		if keep(a, filters) {
			out = append(out, a)
		}
	}

	slices.SortStableFunc(out, func(a, b Annotation[E]) int {
		return cmp.Compare(a.Order(), b.Order())
	})

	return out
}

// DisplaysOf returns an Annotation for each of values, in the order they are passed.
// DisplaysOf neither sorts nor filters.
func (t *Table[E]) DisplaysOf(values ...E) []Annotation[E] {
	out := make([]Annotation[E], len(values))
	for i, v := range values {
		out[i] = t.Wrap(v)
	}

	return out
}

// Find returns the first Annotation, in declaration order, p accepts.
// If p accepts none, Find returns an Annotation wrapping no value and false.
func (t *Table[E]) Find(p Predicate[E]) (Annotation[E], bool) {
	for _, m := range t.members {
		a := t.Wrap(m.Value)
		if p == nil || p(a) {
			return a, true
		}
	}

	return Annotation[E]{enum: t.name}, false
}

// Enums returns every declared member in declaration order.
func (t *Table[E]) Enums() []E {
	out := make([]E, len(t.members))
	for i, m := range t.members {
		out[i] = m.Value
	}

	return out
}

// NameOf is shorthand for t.Wrap(v).Name().
func (t *Table[E]) NameOf(v E) string { return t.Wrap(v).Name() }

// NameOr returns the display name of *v or def if v is nil.
func (t *Table[E]) NameOr(v *E, def string) string {
	if v == nil {
		return def
	}

	return t.NameOf(*v)
}

// NameOrEmpty returns the display name of *v or the empty string if v is nil.
func (t *Table[E]) NameOrEmpty(v *E) string { return t.NameOr(v, "") }

// Descriptors returns the same as Displays, typed as Descriptors.
//
// Descriptors implements [Enumeration].
func (t *Table[E]) Descriptors() []Descriptor {
	as := t.Displays()
	out := make([]Descriptor, len(as))
	for i, a := range as {
		out[i] = a
	}

	return out
}

// DescribeSymbol wraps the member named symbol.
// The lookup behaves like Parse.
//
// DescribeSymbol implements [Enumeration].
func (t *Table[E]) DescribeSymbol(symbol string) (Descriptor, error) {
	v, err := t.Parse(symbol)
	if err != nil {
		return nil, err
	}

	return t.Wrap(v), nil
}

func (t *Table[E]) describeAny(v any) (Descriptor, bool) {
	switch v := v.(type) {
	case E:
		return t.Wrap(v), true
	case *E:
		return t.WrapPtr(v), true
	default:
		return nil, false
	}
}

func keep[E Enum](a Annotation[E], filters []Predicate[E]) bool {
	for _, f := range filters {
		if f != nil && !f(a) {
			return false
		}
	}

	return true
}

// Displays is [*Table.Displays] for the *Table registered for E.
// If none is registered, Displays returns ErrUnsupportedType.
func Displays[E Enum](filters ...Predicate[E]) ([]Annotation[E], error) {
	t, err := TableFor[E]()
	if err != nil {
		return nil, err
	}

	return t.Displays(filters...), nil
}

// DisplaysOf is [*Table.DisplaysOf] for the *Table registered for E.
// If none is registered, DisplaysOf returns ErrUnsupportedType.
func DisplaysOf[E Enum](values ...E) ([]Annotation[E], error) {
	t, err := TableFor[E]()
	if err != nil {
		return nil, err
	}

	return t.DisplaysOf(values...), nil
}

// FindDisplay is [*Table.Find] for the *Table registered for E.
// If p accepts no member, the returned Annotation is absent.
// If no *Table is registered, FindDisplay returns ErrUnsupportedType.
func FindDisplay[E Enum](p Predicate[E]) (Annotation[E], error) {
	t, err := TableFor[E]()
	if err != nil {
		return Annotation[E]{}, err
	}

	a, _ := t.Find(p)
	return a, nil
}

// Enums is [*Table.Enums] for the *Table registered for E.
// If none is registered, Enums returns ErrUnsupportedType.
func Enums[E Enum]() ([]E, error) {
	t, err := TableFor[E]()
	if err != nil {
		return nil, err
	}

	return t.Enums(), nil
}

// GetDisplay wraps v using the *Table registered for E.
// If none is registered, GetDisplay returns ErrUnsupportedType.
func GetDisplay[E Enum](v E) (Annotation[E], error) {
	t, err := TableFor[E]()
	if err != nil {
		return Annotation[E]{}, err
	}

	return t.Wrap(v), nil
}

// GetName returns the display name of v using the *Table registered for E.
// If none is registered, GetName returns ErrUnsupportedType.
func GetName[E Enum](v E) (string, error) {
	a, err := GetDisplay(v)
	if err != nil {
		return "", err
	}

	return a.Name(), nil
}

// GetNameOr returns the display name of *v, or def if v is nil,
// using the *Table registered for E.
// If none is registered, GetNameOr returns ErrUnsupportedType.
func GetNameOr[E Enum](v *E, def string) (string, error) {
	t, err := TableFor[E]()
	if err != nil {
		return "", err
	}

	return t.NameOr(v, def), nil
}
