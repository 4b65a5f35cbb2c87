package dbc

import "errors"

var (
	// ErrTruncatedHeader is returned when the buffer is shorter than the
	// fixed 32-byte header.
	ErrTruncatedHeader = errors.New("dbc: truncated header")

	// ErrNoColumns is returned when the header length yields zero field
	// descriptors.
	ErrNoColumns = errors.New("dbc: no columns")

	// ErrDecompression is returned when the block decompressor reports a
	// non-zero status. The whole load is aborted, there is no partial table.
	ErrDecompression = errors.New("dbc: decompression failed")
)
