package match

// Symbol is a unique identity token. Two symbols are equal only if one was
// copied from the other; the description plays no part in equality.
//
//	idle := match.NewSymbol("idle")
//	idle == match.NewSymbol("idle") // false
//
// The zero Symbol is not created by NewSymbol and is one shared token: every
// Symbol{} equals every other Symbol{}. Check IsZero before using a symbol
// that may be unset as a case key.
type Symbol struct {
	s *symbol
}

type symbol struct {
	description string
}

// NewSymbol returns a new symbol. Every call yields a distinct token.
func NewSymbol(description string) Symbol {
	return Symbol{s: &symbol{description: description}}
}

// Description returns the description given to NewSymbol.
func (s Symbol) Description() string {
	if s.s == nil {
		return ""
	}
	return s.s.description
}

// String renders the symbol as Symbol(<description>).
func (s Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}

// IsZero reports whether s was created without NewSymbol. All zero symbols
// are equal to each other.
func (s Symbol) IsZero() bool { return s.s == nil }
