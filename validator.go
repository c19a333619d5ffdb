package validate

import (
	"go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// Validator
///////////////////////////////////////////////////////////////////////////////

// Validator evaluates rule sets against input values. It carries the two
// collaborators the rules need: a diagnostics logger and the FieldLookup
// consulted by confirmEmail. The zero-cost default is a no-op logger and
// no lookup.
//
// A Validator is immutable after construction and safe for concurrent
// use; every evaluation is an independent pure computation over its
// inputs.
type Validator struct {
	log    *zap.Logger
	lookup FieldLookup
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger installs the diagnostics sink. Diagnostics are warnings
// only; they never fail a validation.
func WithLogger(log *zap.Logger) Option {
	return func(v *Validator) {
		if log != nil {
			v.log = log
		}
	}
}

// WithFieldLookup installs the collaborator confirmEmail resolves sibling
// fields through.
func WithFieldLookup(lookup FieldLookup) Option {
	return func(v *Validator) {
		v.lookup = lookup
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithLookup returns a copy of the validator bound to lookup. It is the
// way form sources attach themselves for the duration of one submission
// without mutating a shared validator.
func (v *Validator) WithLookup(lookup FieldLookup) *Validator {
	bound := *v
	bound.lookup = lookup
	return &bound
}

///////////////////////////////////////////////////////////////////////////////
// Evaluation
///////////////////////////////////////////////////////////////////////////////

// Validate evaluates every rule in opts against in and reports whether
// all of them passed. Every rule is evaluated even after a failure; there
// is no short-circuiting.
func (v *Validator) Validate(in any, opts Options) bool {
	return len(v.Failures(in, opts)) == 0
}

// Failures evaluates every rule in opts against in and returns the names
// of the rules that failed, nil when all passed. Ordering follows map
// iteration and is not guaranteed.
func (v *Validator) Failures(in any, opts Options) []string {
	return v.Check(in, v.compile(opts)...)
}

// Check evaluates typed rules against in and returns the names of the
// rules that failed, nil when all passed. It is the statically-typed
// counterpart of Failures.
func (v *Validator) Check(in any, rules ...Rule) []string {
	var failed []string
	for _, rule := range rules {
		if !v.check(in, rule) {
			failed = append(failed, rule.Name())
		}
	}
	return failed
}

///////////////////////////////////////////////////////////////////////////////
// Default instance and package functions
///////////////////////////////////////////////////////////////////////////////

var _defaultValidator = New()

// Package-level functions that delegate to the default validator. The
// default has no field lookup, so confirmEmail passes open under it; use
// New(WithFieldLookup(...)) or a form source when confirmation matters.

// Validate validates in using the default validator.
func Validate(in any, opts Options) bool {
	return _defaultValidator.Validate(in, opts)
}

// Failures returns failed rule names using the default validator.
func Failures(in any, opts Options) []string {
	return _defaultValidator.Failures(in, opts)
}

// Check evaluates typed rules using the default validator.
func Check(in any, rules ...Rule) []string {
	return _defaultValidator.Check(in, rules...)
}
