package config

import "github.com/xy-planning-network/display"

// An Environment is a different context in which the application operates.
type Environment int

const (
	Development Environment = iota + 1
	Testing
	Demo
	Review
	Staging
	Production
)

var environments = display.Define("Environment",
	display.Declare(Development, "DEVELOPMENT", display.Display{Name: "Development", ShortName: "Dev", GroupName: "Local", Order: 1}),
	display.Declare(Testing, "TESTING", display.Display{Name: "Testing", ShortName: "Test", GroupName: "Local", Order: 2}),
	display.Declare(Demo, "DEMO", display.Display{Name: "Demo", GroupName: "Deployed", Order: 3}),
	display.Declare(Review, "REVIEW", display.Display{Name: "Review", GroupName: "Deployed", Order: 4}),
	display.Declare(Staging, "STAGING", display.Display{Name: "Staging", ShortName: "Stage", GroupName: "Deployed", Order: 5}),
	display.Declare(Production, "PRODUCTION", display.Display{Name: "Production", ShortName: "Prod", GroupName: "Deployed", Order: 6}),
)

func (e Environment) String() string { return environments.Symbol(e) }

func (e Environment) Valid() error { return environments.Valid(e) }

// ParseEnvironment matches val against the symbolic names of every Environment,
// case-insensitively.
func ParseEnvironment(val string) (Environment, error) { return environments.Parse(val) }

func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) IsTesting() bool { return e == Testing }

// IsLocal asserts whether the Environment runs on a developer's machine.
func (e Environment) IsLocal() bool { return environments.Wrap(e).GroupName() == "Local" }
