package retree

import "errors"

// Common errors used throughout the retree package
var (
	// ErrNoAlternative is returned when every alternative of the start
	// nonterminal failed at the start of the input.
	// Parser errors
	ErrNoAlternative = errors.New("no grammar alternative matched the input")
	// ErrTrailingInput is returned when a full expression matched but
	// unconsumed characters remain.
	ErrTrailingInput = errors.New("expression matched but trailing input remains")

	// ErrLabelTooLong indicates a node label exceeds the maximum length.
	// Tree errors
	ErrLabelTooLong = errors.New("node label exceeds maximum length")
	// ErrTooManyChildren indicates a node already holds its maximum number of children.
	ErrTooManyChildren = errors.New("node already holds maximum number of children")
	// ErrFreeCount indicates a request to free more children than a node holds.
	ErrFreeCount = errors.New("cannot free more children than the node holds")

	// ErrConfigValidation is returned when configuration validation fails.
	// Configuration errors
	ErrConfigValidation = errors.New("configuration validation failed")
)
