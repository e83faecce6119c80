// SPDX-License-Identifier: MIT

// Package hailstone: functional configuration for Solve.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package hailstone

// Ordering selects the order in which observation pairs contribute equations
// to the elimination. Any ordering yields the same exact answer; having two
// lets callers cross-check results.
type Ordering int

const (
	// ForwardPairs visits (0,1), (0,2), (1,2), (0,3), ...
	ForwardPairs Ordering = iota

	// ReversePairs visits the same pairs from the last one backwards.
	ReversePairs
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case ForwardPairs:
		return "forward"
	case ReversePairs:
		return "reverse"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrdering is the pair visiting order used when none is given.
	DefaultOrdering = ForwardPairs

	// DefaultAllowPast rejects collisions at negative time.
	DefaultAllowPast = false
)

const panicOrderingInvalid = "hailstone: WithOrdering: unknown ordering"

// Options holds resolved Solve settings. Fields are unexported; use Option.
type Options struct {
	ordering  Ordering
	allowPast bool
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// WithOrdering sets the pair ordering. Panics on an unknown value.
func WithOrdering(o Ordering) Option {
	if o != ForwardPairs && o != ReversePairs {
		panic(panicOrderingInvalid)
	}
	return func(opts *Options) { opts.ordering = o }
}

// WithAllowPast accepts collisions at negative time when allow is true.
func WithAllowPast(allow bool) Option {
	return func(opts *Options) { opts.allowPast = allow }
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{ordering: DefaultOrdering, allowPast: DefaultAllowPast}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
