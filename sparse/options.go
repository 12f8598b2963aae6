// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the text and YAML codecs.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRejectZeroValues controls whether "(r, c, 0)" lines are rejected.
	// false ⇒ accepted and collapsed to "absent" by Set.
	DefaultRejectZeroValues = false

	// DefaultMaxLineBytes bounds a single input line for Read/Load (1 MiB).
	DefaultMaxLineBytes = 1 << 20
)

// ---------- Internal panic messages (no magic strings) ----------

const panicMaxLineBytesInvalid = "sparse: WithMaxLineBytes: n must be > 0"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	rejectZeroValues bool // DefaultRejectZeroValues
	maxLineBytes     int  // DefaultMaxLineBytes
}

// WithRejectZeroValues makes parsers fail with ErrFormat on entries whose value is 0.
// Writers in this package never emit such lines, so the stricter mode is safe for
// files produced here.
func WithRejectZeroValues() Option {
	return func(o *Options) { o.rejectZeroValues = true }
}

// WithMaxLineBytes sets the longest accepted input line for Read/Load.
// Panics if n <= 0.
func WithMaxLineBytes(n int) Option {
	if n <= 0 {
		panic(panicMaxLineBytesInvalid)
	}

	return func(o *Options) { o.maxLineBytes = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		rejectZeroValues: DefaultRejectZeroValues,
		maxLineBytes:     DefaultMaxLineBytes,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
// nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
