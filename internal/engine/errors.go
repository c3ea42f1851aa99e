package engine

import "errors"

var (
	// ErrInput indicates the input file could not be opened or read.
	ErrInput = errors.New("input error")

	// ErrParse indicates the input is not well-formed XML.
	ErrParse = errors.New("parse error")

	// ErrOutput indicates the output file could not be created or written.
	ErrOutput = errors.New("output error")

	// ErrClipboard indicates the result could not be placed on the clipboard.
	ErrClipboard = errors.New("clipboard error")

	// ErrValidation indicates an invalid request.
	ErrValidation = errors.New("validation failed")
)
