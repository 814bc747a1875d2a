package match

// Kind identifies which variant a Key holds.
type Kind uint8

// Key kinds. The zero Key has KindInvalid.
const (
	KindInvalid Kind = iota
	KindString
	KindNumber
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	default:
		return "invalid"
	}
}

// Key is a string, number, or symbol usable as a single map key. Keys of
// different kinds never compare equal, so Num(42) and Str("42") are distinct
// cases.
//
// Key is comparable and is meant to be used as K in Cases and Patterns when
// one pattern map mixes kinds:
//
//	match.Cases[match.Key, string]{
//	    match.Str("42"): func() string { return "string" },
//	    match.Num(42):   func() string { return "number" },
//	}
type Key struct {
	kind Kind
	str  string
	num  float64
	sym  Symbol
}

// Str returns a string key.
func Str(s string) Key { return Key{kind: KindString, str: s} }

// Num returns a number key. Negative zero is the same key as zero. A NaN key
// never matches anything, including itself.
func Num(f float64) Key {
	if f == 0 {
		f = 0
	}
	return Key{kind: KindNumber, num: f}
}

// Int returns a number key for i.
func Int(i int64) Key { return Num(float64(i)) }

// Sym returns a symbol key.
func Sym(s Symbol) Key { return Key{kind: KindSymbol, sym: s} }

// Kind returns the key's kind.
func (k Key) Kind() Kind { return k.kind }

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.kind == KindInvalid }

// Text returns the string of a string key.
func (k Key) Text() (string, bool) {
	return k.str, k.kind == KindString
}

// Number returns the value of a number key.
func (k Key) Number() (float64, bool) {
	return k.num, k.kind == KindNumber
}

// Symbol returns the symbol of a symbol key.
func (k Key) Symbol() (Symbol, bool) {
	return k.sym, k.kind == KindSymbol
}

// String renders the key the way DispatchError does.
func (k Key) String() string {
	switch k.kind {
	case KindString:
		return k.str
	case KindNumber:
		return formatNumber(k.num, 64)
	case KindSymbol:
		return k.sym.String()
	default:
		return "<invalid key>"
	}
}
