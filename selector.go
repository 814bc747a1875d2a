package match

import (
	"errors"
	"fmt"
)

// ErrNoKey is returned by Route when the selector finds no key.
var ErrNoKey = errors.New("no key selected")

// Selector picks the scrutinee out of a View.
type Selector interface {
	Select(v View) (Key, bool)
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(v View) (Key, bool)

// Select implements the Selector interface.
func (f SelectorFunc) Select(v View) (Key, bool) {
	return f(v)
}

// Field returns a Selector that reads the key at path.
func Field(path string) Selector {
	return field{path: path}
}

type field struct {
	path string
}

func (s field) Select(v View) (Key, bool) {
	return v.Key(s.path)
}

// FirstOf returns a Selector that tries each selector in order and uses the
// first key found.
//
// Example:
//
//	// EventBridge events carry "detail-type", SNS notifications carry "Type"
//	sel := match.FirstOf(match.Field("detail-type"), match.Field("Type"))
func FirstOf(sels ...Selector) Selector {
	return firstOf{sels: sels}
}

type firstOf struct {
	sels []Selector
}

func (s firstOf) Select(v View) (Key, bool) {
	for _, sel := range s.sels {
		if k, ok := sel.Select(v); ok {
			return k, true
		}
	}
	return Key{}, false
}

// Route inspects raw, selects its key, and dispatches the key through t.
//
// Errors from the inspector are returned as is. If sel finds no key the
// error wraps ErrNoKey. Otherwise the result is whatever t.Dispatch returns.
//
// This is a package-level function (not a method) due to Go generics
// limitations: methods cannot have type parameters independent of the
// receiver.
//
// Example:
//
//	queues := match.NewTable(match.Cases[match.Key, string]{
//	    match.Str("user/created"): func() string { return "onboarding" },
//	}.Otherwise(func() string { return "default" }))
//
//	queue, err := match.Route(queues, match.JSONInspector(), match.Field("type"), raw)
func Route[R any](t *Table[Key, R], insp Inspector, sel Selector, raw []byte) (R, error) {
	var zero R

	view, err := insp.Inspect(raw)
	if err != nil {
		return zero, err
	}

	key, ok := sel.Select(view)
	if !ok {
		return zero, fmt.Errorf("route: %w", ErrNoKey)
	}

	return t.Dispatch(key)
}
