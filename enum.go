package display

// Enum is the constraint satisfied by types whose values form a closed set of integer constants.
//
// Every Enum used with this package is described by a [Table],
// which declares the constants making up that closed set.
//
// ~uint, ~uint64 and ~uintptr are left out: every value must fit
// the int64 returned by Underlying.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// An Enum implements Enumerable by delegating to its [Table]:
//
//	func (s Status) String() string { return statuses.Symbol(s) }
//	func (s Status) Valid() error   { return statuses.Valid(s) }
type Enumerable interface {
	String() string
	Valid() error
}
