/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package failure defines the kinds of failure a semantic pull request check
// can report. Each failure carries the exact human-readable message surfaced
// to the workflow run, and unwraps to its kind so callers can branch with
// errors.Is.
package failure

import (
	"errors"
	"fmt"
)

// Failure kinds.
var (
	// MissingInput means a required configuration value is absent.
	MissingInput = errors.New("missing input")
	// InvalidConfig means a configuration value does not decode to the expected shape.
	InvalidConfig = errors.New("invalid config")
	// NonConformingTitle means the title is not a conventional commit with an allowed type.
	NonConformingTitle = errors.New("non-conforming title")
	// ScopeNotAllowed means the commit scope is not in the scope allow-list.
	ScopeNotAllowed = errors.New("scope not allowed")
	// PatternMismatch means a text did not match the configured regular expression.
	PatternMismatch = errors.New("pattern mismatch")
	// LabelStore means a call against the pull request's labels failed.
	LabelStore = errors.New("label store")
)

// Error is a reported failure.
type Error struct {
	Kind    error
	Message string
}

// Error returns the message verbatim.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the failure kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// New returns a failure of the given kind with a formatted message.
func New(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags err with kind, keeping err in the chain. The message is err's.
func Wrap(kind error, err error) error {
	if err == nil {
		return nil
	}
	return &wrapped{kind: kind, err: err}
}

type wrapped struct {
	kind error
	err  error
}

func (w *wrapped) Error() string   { return w.err.Error() }
func (w *wrapped) Unwrap() []error { return []error{w.kind, w.err} }
