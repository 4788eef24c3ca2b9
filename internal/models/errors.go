package models

import "errors"

var (
	// ErrInput marks request-level validation failures. Unlike per-rule
	// errors, these reject the whole request.
	ErrInput = errors.New("invalid input")

	// ErrExtraction marks PDF text extraction failures. Its message is the
	// only diagnostic surfaced to clients.
	ErrExtraction = errors.New("could not read PDF file")
)
