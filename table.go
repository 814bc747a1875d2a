package match

import (
	"maps"
	"time"
)

// Table binds a set of patterns once and dispatches many values against it.
// It is the reverse of Matcher: Matcher fixes the value, Table fixes the
// patterns.
//
// Usage:
//  1. Create a table with NewTable
//  2. Dispatch values with Dispatch
//
// Table is safe for concurrent use. Its cases are copied at construction, so
// later changes to the caller's map have no effect.
type Table[K comparable, R any] struct {
	patterns Patterns[K, R]
	hooks    hooks
}

// NewTable creates a Table for p with the given options.
//
// Example:
//
//	statuses := match.NewTable(match.Cases[int, string]{
//	    200: func() string { return "OK" },
//	    404: func() string { return "Not Found" },
//	}.Otherwise(func() string { return "Unknown" }),
//	    match.WithLogger(slog.Default()),
//	)
//
//	text, err := statuses.Dispatch(resp.StatusCode)
func NewTable[K comparable, R any](p Patterns[K, R], opts ...Option) *Table[K, R] {
	t := &Table[K, R]{
		patterns: Patterns[K, R]{
			Cases:    maps.Clone(p.Cases),
			Wildcard: p.Wildcard,
		},
	}
	for _, opt := range opts {
		opt(&t.hooks)
	}
	return t
}

// Dispatch invokes the producer for value, or the wildcard, and returns its
// result unchanged. When neither exists the error is a *DispatchError.
//
// Hooks run around the producer; see WithOnSelect, WithOnComplete,
// WithOnPanic and WithOnMiss. A panicking producer skips OnComplete; its
// panic reaches OnPanic hooks and is then re-raised unchanged.
func (t *Table[K, R]) Dispatch(value K) (R, error) {
	fn, wildcard := t.patterns.lookup(value)

	if t.hooks.empty() {
		if fn == nil {
			var zero R
			return zero, &DispatchError{Value: value}
		}
		return fn(), nil
	}

	key := describe(value)
	if fn == nil {
		err := &DispatchError{Value: value}
		t.hooks.callOnMiss(key, err)
		var zero R
		return zero, err
	}

	t.hooks.callOnSelect(key, wildcard)

	start := time.Now()
	result := t.produce(fn, key, wildcard)
	t.hooks.callOnComplete(key, wildcard, time.Since(start))

	return result, nil
}

// produce runs fn, reporting a panic to OnPanic hooks before re-raising it.
func (t *Table[K, R]) produce(fn func() R, key string, wildcard bool) R {
	if len(t.hooks.onPanic) > 0 {
		defer func() {
			if r := recover(); r != nil {
				t.hooks.callOnPanic(key, wildcard, r)
				panic(r)
			}
		}()
	}
	return fn()
}

// Has reports whether value has an exact case. The wildcard is not
// considered.
func (t *Table[K, R]) Has(value K) bool {
	return t.patterns.Cases[value] != nil
}

// HasWildcard reports whether the table falls back to a wildcard.
func (t *Table[K, R]) HasWildcard() bool {
	return t.patterns.Wildcard != nil
}

// Keys returns the values that have exact cases, in no particular order.
func (t *Table[K, R]) Keys() []K {
	keys := make([]K, 0, len(t.patterns.Cases))
	for k, fn := range t.patterns.Cases {
		if fn != nil {
			keys = append(keys, k)
		}
	}
	return keys
}
