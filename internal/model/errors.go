package model

import "errors"

// Error taxonomy. All of these are recoverable at the boundary of a single
// symbol or a single request; nothing in the core is a process fault.
// Insufficient indicator history is intentionally not an error: it is an
// absent Value.
var (
	// ErrDataUnavailable: the provider cannot return a series for a symbol
	// (network failure, unknown symbol, empty result).
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrInvalidInput: a request is malformed before any fetch occurs
	// (symbol list over the cap, unknown mode).
	ErrInvalidInput = errors.New("invalid input")

	// ErrAmbiguousData: a fetched bar is malformed (high < low, unordered
	// or duplicate timestamps). The series is rejected rather than computed
	// against, since it would corrupt ATR and pivot results.
	ErrAmbiguousData = errors.New("ambiguous market data")
)
