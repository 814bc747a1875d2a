package match

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when the input is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Inspector examines raw bytes and returns a View for key extraction.
type Inspector interface {
	Inspect(raw []byte) (View, error)
}

// View provides read-only field access for pulling a scrutinee out of a
// document.
type View interface {
	// HasField returns true if the path exists in the document.
	HasField(path string) bool

	// Key returns the value at path as a Key. Strings become string keys
	// and numbers become number keys. Any other value, or a missing path,
	// returns false.
	Key(path string) (Key, bool)
}

// JSONInspector returns an Inspector that uses gjson path syntax.
func JSONInspector() Inspector {
	return jsonInspector{}
}

type jsonInspector struct{}

func (jsonInspector) Inspect(raw []byte) (View, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	return jsonView{raw: raw}, nil
}

type jsonView struct {
	raw []byte
}

func (v jsonView) HasField(path string) bool {
	return gjson.GetBytes(v.raw, path).Exists()
}

func (v jsonView) Key(path string) (Key, bool) {
	r := gjson.GetBytes(v.raw, path)
	switch r.Type {
	case gjson.String:
		return Str(r.Str), true
	case gjson.Number:
		return Num(r.Num), true
	default:
		return Key{}, false
	}
}
