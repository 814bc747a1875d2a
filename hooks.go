package match

import (
	"log/slog"
	"time"
)

// OnSelectFunc is called after a producer is chosen and before it runs.
// wildcard reports whether the fallback was chosen.
type OnSelectFunc func(key string, wildcard bool)

// OnCompleteFunc is called after the chosen producer returns. It is not
// called if the producer panics.
type OnCompleteFunc func(key string, wildcard bool, duration time.Duration)

// OnPanicFunc is called when the chosen producer panics, with the recovered
// value. The panic continues after all hooks run.
type OnPanicFunc func(key string, wildcard bool, recovered any)

// OnMissFunc is called when neither a case nor a wildcard exists. The
// DispatchError is still returned to the caller.
type OnMissFunc func(key string, err error)

// hooks holds all configured hook functions.
type hooks struct {
	onSelect   []OnSelectFunc
	onComplete []OnCompleteFunc
	onPanic    []OnPanicFunc
	onMiss     []OnMissFunc
}

func (h *hooks) empty() bool {
	return len(h.onSelect) == 0 && len(h.onComplete) == 0 &&
		len(h.onPanic) == 0 && len(h.onMiss) == 0
}

// Option configures a Table.
type Option func(*hooks)

// WithOnSelect adds a hook called just before the chosen producer runs.
// Multiple hooks are called in order.
//
// Example:
//
//	match.WithOnSelect(func(key string, wildcard bool) {
//	    if wildcard {
//	        metrics.Incr("match.fallback", "key:"+key)
//	    }
//	})
func WithOnSelect(fn OnSelectFunc) Option {
	return func(h *hooks) {
		h.onSelect = append(h.onSelect, fn)
	}
}

// WithOnComplete adds a hook called after the chosen producer returns.
// Multiple hooks are called in order.
//
// Example:
//
//	match.WithOnComplete(func(key string, wildcard bool, d time.Duration) {
//	    metrics.Timing("match.produce", d, "key:"+key)
//	})
func WithOnComplete(fn OnCompleteFunc) Option {
	return func(h *hooks) {
		h.onComplete = append(h.onComplete, fn)
	}
}

// WithOnPanic adds a hook called when the chosen producer panics. Hooks
// observe the panic; it is re-raised with the same value afterwards.
// Multiple hooks are called in order.
//
// Example:
//
//	match.WithOnPanic(func(key string, wildcard bool, recovered any) {
//	    metrics.Incr("match.panic", "key:"+key)
//	})
func WithOnPanic(fn OnPanicFunc) Option {
	return func(h *hooks) {
		h.onPanic = append(h.onPanic, fn)
	}
}

// WithOnMiss adds a hook called when a value has no case and no wildcard.
// Hooks observe the miss; they cannot turn it into a success.
// Multiple hooks are called in order.
func WithOnMiss(fn OnMissFunc) Option {
	return func(h *hooks) {
		h.onMiss = append(h.onMiss, fn)
	}
}

// WithLogger logs selections and completions at debug level, misses at
// warn level and producer panics at error level.
func WithLogger(logger *slog.Logger) Option {
	return func(h *hooks) {
		h.onSelect = append(h.onSelect, func(key string, wildcard bool) {
			logger.Debug("pattern selected",
				slog.String("key", key),
				slog.Bool("wildcard", wildcard),
			)
		})
		h.onComplete = append(h.onComplete, func(key string, wildcard bool, d time.Duration) {
			logger.Debug("pattern completed",
				slog.String("key", key),
				slog.Bool("wildcard", wildcard),
				slog.Duration("elapsed", d),
			)
		})
		h.onPanic = append(h.onPanic, func(key string, wildcard bool, recovered any) {
			logger.Error("producer panicked",
				slog.String("key", key),
				slog.Bool("wildcard", wildcard),
				slog.Any("panic", recovered),
			)
		})
		h.onMiss = append(h.onMiss, func(key string, err error) {
			logger.Warn("no pattern found",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		})
	}
}

func (h *hooks) callOnSelect(key string, wildcard bool) {
	for _, fn := range h.onSelect {
		fn(key, wildcard)
	}
}

func (h *hooks) callOnComplete(key string, wildcard bool, d time.Duration) {
	for _, fn := range h.onComplete {
		fn(key, wildcard, d)
	}
}

func (h *hooks) callOnPanic(key string, wildcard bool, recovered any) {
	for _, fn := range h.onPanic {
		fn(key, wildcard, recovered)
	}
}

func (h *hooks) callOnMiss(key string, err error) {
	for _, fn := range h.onMiss {
		fn(key, err)
	}
}
