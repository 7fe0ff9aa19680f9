package fetch

import (
	E "github.com/sagernet/sing-fetch/common/exceptions"
)

var (
	// ErrBodyUnusable: consumption was attempted on a body whose stream is
	// already disturbed or locked.
	ErrBodyUnusable = E.New("body unusable")

	// ErrReadFailure: the stream layer failed while fully reading the body.
	// The upstream cause is intentionally not carried across this boundary.
	ErrReadFailure = E.New("failed to fully read body")

	// ErrUnsupportedContentType: the form-data entry point only accepts the
	// multipart/form-data and application/x-www-form-urlencoded essences.
	ErrUnsupportedContentType = E.New("unsupported content type")
)

// ConversionError reports that the body's bytes were read successfully but
// could not be converted to the requested representation. It is distinct
// from ErrReadFailure so callers can tell "could not obtain bytes" from
// "bytes obtained but not in expected shape".
type ConversionError struct {
	Inner error
}

func (e *ConversionError) Error() string {
	return "convert body: " + e.Inner.Error()
}

func (e *ConversionError) Unwrap() error {
	return e.Inner
}
