package ot

import "errors"

// ErrLengthMismatch is returned by Apply, Compose, and Transform when the
// base/target length preconditions between a Delta and its argument do not
// hold.
var ErrLengthMismatch = errors.New("ot: length mismatch")

// ErrParseError is returned when deserializing a malformed Delta document.
var ErrParseError = errors.New("ot: malformed delta document")
