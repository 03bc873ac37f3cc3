// SPDX-License-Identifier: MIT

// Package binding: functional configuration for the catalog generator.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option changes what Generate emits or observes.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package binding

import (
	"github.com/katalvlaran/lvlin/internal/logger"
)

// Panic messages (stable, grep-able).
const (
	panicNilLogger = "binding: WithLogger: logger must be non-nil"
	panicBadOp     = "binding: WithOps: unknown operation"
)

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	log logger.Logger // DefaultLogger: discard
	ops []Op          // nil means every operation, in catalog order
}

// WithLogger routes generation records (Debug per op group, Info summary) to l.
//
// Errors:
//   - Panics when l is nil.
func WithLogger(l logger.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.log = l }
}

// WithOps restricts the generated catalog to ops. Emission order stays the
// catalog order regardless of argument order; duplicates are ignored.
// An empty list restores the default (all operations).
//
// Errors:
//   - Panics on an Op outside the table.
func WithOps(ops ...Op) Option {
	for _, op := range ops {
		if !op.Valid() {
			panic(panicBadOp)
		}
	}
	sel := append([]Op(nil), ops...)

	return func(o *Options) {
		if len(sel) == 0 {
			o.ops = nil
			return
		}
		o.ops = sel
	}
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{log: logger.Discard()}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Time O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// selected reports whether op is emitted under o.
func (o Options) selected(op Op) bool {
	if o.ops == nil {
		return true
	}
	for _, s := range o.ops {
		if s == op {
			return true
		}
	}

	return false
}
