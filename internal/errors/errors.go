// Package errors is the single import for error handling in the infra and
// delivery layers: stdlib matching plus pkg/errors stack traces on wrap.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching and joining follow the standard library.
var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// Construction and wrapping record a stack trace.
var (
	New       = pkgerrors.New
	Errorf    = pkgerrors.Errorf
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
)
