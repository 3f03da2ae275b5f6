package format

import "errors"

var (
	// ErrSignatureMismatch indicates the table did not start with Signature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrSizeMismatch indicates the header's declared sizes disagree with the buffer length.
	ErrSizeMismatch = errors.New("format: size mismatch")
)
