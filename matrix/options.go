// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes Text output and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options only affect floating-point element types; integers always render with %d.
//   - String() is Text() with no options.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision selects the shortest representation that round-trips.
	DefaultPrecision = -1

	// DefaultVerb renders floats like fmt's %v.
	DefaultVerb = 'v'

	// DefaultSeparator is placed between adjacent columns of a row.
	DefaultSeparator = " "
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
	panicVerbInvalid      = "matrix: WithVerb: verb must be one of 'v', 'g', 'f', 'e'"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective rendering configuration after applying Option setters.
type Options struct {
	precision int    // >= -1; DefaultPrecision
	verb      rune   // 'v','g','f','e'; DefaultVerb
	separator string // DefaultSeparator
}

// WithPrecision sets the number of digits used for floating-point elements.
// -1 restores the shortest round-trip form.
//
// Panics:
//   - if p < -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithVerb selects the fmt verb used for floating-point elements.
//
// Panics:
//   - if v is not one of 'v', 'g', 'f', 'e'.
func WithVerb(v rune) Option {
	switch v {
	case 'v', 'g', 'f', 'e':
	default:
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = v }
}

// WithSeparator sets the string placed between adjacent columns.
func WithSeparator(s string) Option {
	return func(o *Options) { o.separator = s }
}

// NewOptions resolves opts on top of the defaults.
// Exposed for tests and callers that want to inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Precision returns the effective float precision.
func (o Options) Precision() int { return o.precision }

// Verb returns the effective float verb.
func (o Options) Verb() rune { return o.verb }

// Separator returns the effective column separator.
func (o Options) Separator() string { return o.separator }

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters run in order (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		precision: DefaultPrecision,
		verb:      DefaultVerb,
		separator: DefaultSeparator,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
