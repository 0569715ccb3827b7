package display_test

import "github.com/xy-planning-network/display"

type SomeStatus int

const (
	Fine SomeStatus = iota + 1
	Ok
	Good
)

var someStatuses = display.Define("SomeStatus",
	display.Declare(Fine, "Fine", display.Display{
		Name:        "Fine Name",
		ShortName:   "Fine ShortName",
		GroupName:   "Fine GroupName",
		Description: "Fine Description",
		Order:       1,
	}),
	display.Declare(Ok, "Ok", display.Display{Name: "Ok Name", Order: 2}),
	display.Declare(Good, "Good", display.Display{Name: "Good Name", Order: 3}),
)

func (s SomeStatus) String() string { return someStatuses.Symbol(s) }
func (s SomeStatus) Valid() error   { return someStatuses.Valid(s) }

var _ display.Enumerable = Fine

type OrderedStatus int

const (
	OrderedFine OrderedStatus = iota + 1
	OrderedOk
	OrderedGood
)

var orderedStatuses = display.Define("OrderedStatus",
	display.Declare(OrderedFine, "Fine", display.Display{Order: 1}),
	display.Declare(OrderedOk, "Ok", display.Display{Order: 3}),
	display.Declare(OrderedGood, "Good", display.Display{Order: 2}),
)

type NotAnnotatedStatus uint8

const (
	NotAnnotatedFine NotAnnotatedStatus = iota + 1
	NotAnnotatedOk
	NotAnnotatedGood
)

var notAnnotatedStatuses = display.Define("NotAnnotatedStatus",
	display.Declare(NotAnnotatedFine, "Fine"),
	display.Declare(NotAnnotatedOk, "Ok"),
	display.Declare(NotAnnotatedGood, "Good"),
)

// TiedStatus is declared out of value order, with ties in Order.
type TiedStatus int16

const (
	TiedA TiedStatus = 10
	TiedB TiedStatus = 5
	TiedC TiedStatus = 7
	TiedD TiedStatus = 1
)

var tiedStatuses = display.Define("TiedStatus",
	display.Declare(TiedA, "A", display.Display{Order: 2}),
	display.Declare(TiedB, "B", display.Display{Order: 1}),
	display.Declare(TiedC, "C", display.Display{Order: 2}),
	display.Declare(TiedD, "D", display.Display{Order: 1, GroupName: "first"}),
)
