package display

import (
	"fmt"
	"strconv"
	"strings"
)

// A Member declares one value of an Enum: the value itself, its symbolic name
// and, optionally, its [Display].
type Member[E Enum] struct {
	Value  E
	Symbol string

	displays []Display
}

// Declare constructs a Member.
//
// At most one Display may be attached to a Member;
// [NewTable] rejects a Member declaring more.
func Declare[E Enum](value E, symbol string, d ...Display) Member[E] {
	return Member[E]{Value: value, Symbol: symbol, displays: d}
}

// Display returns the Display declared for the Member, if any.
func (m Member[E]) Display() (Display, bool) {
	if len(m.displays) == 0 {
		return Display{}, false
	}

	return m.displays[0], true
}

// A Table maps every member of an Enum to its symbolic name and declared [Display].
//
// A Table keeps members in the order they are declared.
// A Table is immutable once constructed and safe for concurrent use.
type Table[E Enum] struct {
	name    string
	members []Member[E]
	values  map[E]int
	symbols map[string]int
}

// NewTable constructs a *Table named name from members.
//
// If name is empty or any member lacks a symbol or declares more than one Display,
// NewTable returns ErrNotValid.
// If two members share a value or a symbol, NewTable returns ErrExists.
func NewTable[E Enum](name string, members ...Member[E]) (*Table[E], error) {
	if name == "" {
		return nil, fmt.Errorf("%w: table name is empty", ErrNotValid)
	}

	t := &Table[E]{
		name:    name,
		members: make([]Member[E], 0, len(members)),
		values:  make(map[E]int, len(members)),
		symbols: make(map[string]int, len(members)),
	}

	for _, m := range members {
		if m.Symbol == "" {
			return nil, fmt.Errorf("%w: %s member %d has no symbol", ErrNotValid, name, m.Value)
		}

		if len(m.displays) > 1 {
			return nil, fmt.Errorf("%w: %s.%s declares %d displays", ErrNotValid, name, m.Symbol, len(m.displays))
		}

		if i, ok := t.values[m.Value]; ok {
			return nil, fmt.Errorf("%w: %s.%s reuses the value of %s.%s", ErrExists, name, m.Symbol, name, t.members[i].Symbol)
		}

		if _, ok := t.symbols[m.Symbol]; ok {
			return nil, fmt.Errorf("%w: %s.%s is declared twice", ErrExists, name, m.Symbol)
		}

		t.values[m.Value] = len(t.members)
		t.symbols[m.Symbol] = len(t.members)
		t.members = append(t.members, m)
	}

	return t, nil
}

// MustNewTable is like NewTable but panics if the *Table cannot be constructed.
func MustNewTable[E Enum](name string, members ...Member[E]) *Table[E] {
	t, err := NewTable(name, members...)
	if err != nil {
		panic(err)
	}

	return t
}

// Define constructs a *Table and registers it,
// making it available to the package-level helpers like [Displays] and [Describe].
//
// Define panics if either step fails; it is meant for initializing package-level variables:
//
//	var statuses = display.Define("Status",
//		display.Declare(Fine, "Fine", display.Display{Name: "Fine Name", Order: 1}),
//		display.Declare(Ok, "Ok"),
//	)
func Define[E Enum](name string, members ...Member[E]) *Table[E] {
	t := MustNewTable(name, members...)
	if err := Register(t); err != nil {
		panic(err)
	}

	return t
}

// EnumName is the name the *Table was constructed with.
func (t *Table[E]) EnumName() string { return t.name }

// Len is the number of members declared.
func (t *Table[E]) Len() int { return len(t.members) }

// Symbol returns the symbolic name of v.
// If v is not a declared member, Symbol formats v as a decimal number.
func (t *Table[E]) Symbol(v E) string {
	if m, ok := t.member(v); ok {
		return m.Symbol
	}

	return strconv.FormatInt(int64(v), 10)
}

// Valid returns ErrNotValid if v is not a declared member.
func (t *Table[E]) Valid(v E) error {
	if _, ok := t.member(v); !ok {
		return fmt.Errorf("%w: %d is not a member of %s", ErrNotValid, v, t.name)
	}

	return nil
}

// Parse finds the member whose symbolic name is symbol.
// An exact match wins over a case-insensitive one.
// If no member matches, Parse returns ErrNotExist.
func (t *Table[E]) Parse(symbol string) (E, error) {
	if i, ok := t.symbols[symbol]; ok {
		return t.members[i].Value, nil
	}

	for _, m := range t.members {
		if strings.EqualFold(m.Symbol, symbol) {
			return m.Value, nil
		}
	}

	var zero E
	return zero, fmt.Errorf("%w: %s has no member %q", ErrNotExist, t.name, symbol)
}

func (t *Table[E]) member(v E) (Member[E], bool) {
	i, ok := t.values[v]
	if !ok {
		return Member[E]{}, false
	}

	return t.members[i], true
}
