// Package match picks a producer by exact key and runs it.
//
// A scrutinee is a comparable value: a string, a number, a Symbol, or a Key
// when one pattern map mixes those kinds. Patterns map scrutinees to
// zero-argument producers and may carry a wildcard used when no case exists.
//
// # Quick Start
//
//	statusText := match.Cases[int, string]{
//	    200: func() string { return "OK" },
//	    404: func() string { return "Not Found" },
//	}.Otherwise(func() string { return "Unknown" })
//
//	text, err := match.Match(code, statusText)
//
// Dispatch is two-stage when the value is known before the patterns:
//
//	m := match.On(code)
//	text, err := match.Dispatch(m, statusText)
//
// or, curried:
//
//	status := match.Prepare[string](code)
//	text, err := status(statusText)
//
// # Matching Rules
//
//   - The producer keyed exactly to the value runs, and only that one.
//   - If there is no such producer the wildcard runs.
//   - If there is no wildcard either, nothing runs and the error is a
//     *DispatchError whose message names the value.
//
// Equality is Go equality on K. Values of different dynamic types never
// match, so with K = any the int 42 and the string "42" are distinct keys.
// Symbols compare by identity, not by description. A nil producer counts as
// absent.
//
// The dispatcher returns the producer's result unchanged and lets panics
// through. It keeps no state between calls.
//
// # Error Handling
//
// A miss is always an error. Check for it with errors.As or errors.Is:
//
//	var de *match.DispatchError
//	if errors.As(err, &de) {
//	    log.Printf("unhandled value %v", de.Value)
//	}
//
//	if errors.Is(err, match.ErrNoPattern) { ... }
//
// Use Must where a miss is a bug.
//
// # Tables
//
// A Table binds patterns once and dispatches many values. Tables accept
// hooks for observability:
//
//	t := match.NewTable(statusText,
//	    match.WithLogger(slog.Default()),
//	    match.WithOnComplete(func(key string, wildcard bool, d time.Duration) {
//	        metrics.Timing("status.text", d)
//	    }),
//	)
//
// Available hooks:
//   - WithOnSelect: Called before the chosen producer runs
//   - WithOnComplete: Called after the chosen producer returns
//   - WithOnPanic: Called when the chosen producer panics; the panic continues
//   - WithOnMiss: Called when nothing matches
//   - WithLogger: Logs all of the above with log/slog
//
// # JSON Scrutinees
//
// Route pulls the scrutinee out of a JSON document with an Inspector and a
// Selector, then dispatches it through a Table keyed by Key:
//
//	t := match.NewTable(match.Cases[match.Key, string]{
//	    match.Str("UserCreated"): func() string { return "users" },
//	}.Otherwise(func() string { return "misc" }))
//
//	queue, err := match.Route(t, match.JSONInspector(),
//	    match.FirstOf(match.Field("detail-type"), match.Field("Type")), raw)
//
// JSON strings become string keys and JSON numbers become number keys.
//
// # Thread Safety
//
// Matcher, Patterns and Table are safe for concurrent use as long as callers
// do not mutate a Cases map while it is being dispatched against.
package match
