package entities

// Value is a template value that may be null. A null Value is what a render
// returns when the resolved value is absent and the renderer passes nulls
// through.
type Value struct {
	Text string
	Null bool
}

// Null returns the null Value.
func Null() Value {
	return Value{Null: true}
}

// Text returns a non-null Value holding s.
func Text(s string) Value {
	return Value{Text: s}
}

// String returns the text of v, "" when v is null.
func (v Value) String() string {
	if v.Null {
		return ""
	}
	return v.Text
}

// IsBlank reports whether v is null or contains only white space.
func (v Value) IsBlank() bool {
	if v.Null {
		return true
	}
	for _, r := range v.Text {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '\v':
		default:
			return false
		}
	}
	return true
}
