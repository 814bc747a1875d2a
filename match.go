package match

// Cases maps scrutinee values to the producers that handle them.
//
//	match.Cases[int, string]{
//	    200: func() string { return "OK" },
//	    404: func() string { return "Not Found" },
//	}
type Cases[K comparable, R any] map[K]func() R

// Otherwise returns Patterns that fall back to fn when no case matches.
func (c Cases[K, R]) Otherwise(fn func() R) Patterns[K, R] {
	return Patterns[K, R]{Cases: c, Wildcard: fn}
}

// Patterns returns Patterns without a wildcard. Dispatching a value with no
// case returns a *DispatchError.
func (c Cases[K, R]) Patterns() Patterns[K, R] {
	return Patterns[K, R]{Cases: c}
}

// Patterns is the full pattern map handed to the dispatch stage.
//
// The wildcard is a field rather than a reserved key, so a string case
// keyed "_" is just another case.
type Patterns[K comparable, R any] struct {
	// Cases holds the exact-key producers.
	Cases Cases[K, R]

	// Wildcard is called when Cases has no producer for the value.
	// Optional.
	Wildcard func() R
}

// lookup selects the producer for value. A nil producer counts as absent.
// The second result reports whether the wildcard was chosen.
func (p Patterns[K, R]) lookup(value K) (func() R, bool) {
	if fn := p.Cases[value]; fn != nil {
		return fn, false
	}
	if p.Wildcard != nil {
		return p.Wildcard, true
	}
	return nil, false
}

// Matcher is a scrutinee waiting for its patterns. The zero value matches
// the zero value of K.
type Matcher[K comparable] struct {
	value K
}

// On prepares value for dispatch. It never fails.
//
//	m := match.On(code)
//	msg, err := match.Dispatch(m, statusText)
func On[K comparable](value K) Matcher[K] {
	return Matcher[K]{value: value}
}

// Value returns the scrutinee.
func (m Matcher[K]) Value() K { return m.value }

// Dispatch invokes the producer keyed exactly to the matcher's value, or the
// wildcard if there is none, and returns its result unchanged. When neither
// exists no producer runs and the error is a *DispatchError.
//
// This is a package-level function (not a method) due to Go generics
// limitations: methods cannot have type parameters independent of the
// receiver.
func Dispatch[K comparable, R any](m Matcher[K], p Patterns[K, R]) (R, error) {
	fn, _ := p.lookup(m.value)
	if fn == nil {
		var zero R
		return zero, &DispatchError{Value: m.value}
	}
	return fn(), nil
}

// Func is a prepared dispatch function bound to one scrutinee.
type Func[K comparable, R any] func(p Patterns[K, R]) (R, error)

// Prepare returns a dispatch function bound to value. The result type must be
// given explicitly; the key type is inferred:
//
//	status := match.Prepare[string](resp.StatusCode)
//	text, err := status(statusText)
func Prepare[R any, K comparable](value K) Func[K, R] {
	m := On(value)
	return func(p Patterns[K, R]) (R, error) {
		return Dispatch(m, p)
	}
}

// Match dispatches value against p in one call.
func Match[K comparable, R any](value K, p Patterns[K, R]) (R, error) {
	return Dispatch(On(value), p)
}

// Must returns r, or panics with err. Use it where a miss is a bug:
//
//	label := match.Must(match.Match(state, labels))
func Must[R any](r R, err error) R {
	if err != nil {
		panic(err)
	}
	return r
}
