package display

// A Display is the human-facing metadata declared for a single member of an Enum.
//
// Every field is optional.
// Reading a Display through an [Annotation] substitutes a fallback for each zero-value field.
type Display struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	ShortName   string `json:"shortName,omitempty" yaml:"shortName,omitempty"`
	GroupName   string `json:"groupName,omitempty" yaml:"groupName,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Order       int    `json:"order,omitempty" yaml:"order,omitempty"`
}

// IsZero asserts whether nothing is declared on the Display.
func (d Display) IsZero() bool { return d == Display{} }
