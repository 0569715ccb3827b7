package display_test

import (
	"fmt"

	"github.com/xy-planning-network/display"
)

type Grade int

const (
	GradeFine Grade = 1
	GradeOk   Grade = 2
	GradeGood Grade = 3
)

var grades = display.Define("Grade",
	display.Declare(GradeGood, "Good", display.Display{Order: 3}),
	display.Declare(GradeFine, "Fine", display.Display{Name: "Fine Name", Order: 1}),
	display.Declare(GradeOk, "Ok", display.Display{Order: 2}),
)

func ExampleTable_Displays() {
	for _, a := range grades.Displays() {
		fmt.Println(a.Underlying(), a.String(), a.Name())
	}
	// Output:
	// 1 Fine Fine Name
	// 2 Ok Ok
	// 3 Good Good
}

func ExampleTable_DisplaysOf() {
	for _, a := range grades.DisplaysOf(GradeGood, GradeFine) {
		fmt.Println(a.Name())
	}
	// Output:
	// Good
	// Fine Name
}

func ExampleDescribe() {
	d, err := display.Describe(GradeFine)
	fmt.Println(d.Name(), err)

	_, err = display.Describe(1)
	fmt.Println(err)
	// Output:
	// Fine Name <nil>
	// unsupported type: int
}
