/*
Package display decorates enumeration values with human-readable display metadata.

# Tables

Go has no enumeration keyword; an enumeration is a named integer type and a closed set of constants.
A [Table] declares that closed set, giving each member a symbolic name and, optionally, a [Display]:

	type Status int

	const (
		Fine Status = iota + 1
		Ok
		Good
	)

	var statuses = display.Define("Status",
		display.Declare(Fine, "Fine", display.Display{Name: "Fine Name", Order: 1}),
		display.Declare(Ok, "Ok", display.Display{Order: 2}),
		display.Declare(Good, "Good", display.Display{Order: 3}),
	)

# Annotations

[*Table.Wrap] pairs a value with its Display in an [Annotation].
Reading an Annotation substitutes a fallback for anything not declared:
  - Name falls back to the symbolic name
  - ShortName falls back to Name
  - GroupName and Description fall back to the empty string
  - Order falls back to 0

The zero-value Annotation wraps no value and every accessor returns the empty string or zero.

# Queries

[*Table.Displays] lists every member sorted by Order, optionally filtered.
[*Table.DisplaysOf] wraps values in the order given.
[*Table.Find] returns the first member matching a [Predicate].
[*Table.Enums] lists the declared values.

# Registry

[Define] and [Register] make a Table available by its Go type and by its name.
The package-level helpers - [Displays], [GetName], [Describe] and so on - resolve Tables this way.
They return [ErrUnsupportedType] for a type that has no registered Table.
*/
package display
