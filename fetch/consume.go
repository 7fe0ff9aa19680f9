package fetch

import (
	"github.com/sagernet/sing-fetch/common/promise"
	"github.com/sagernet/sing-fetch/common/task"
	"github.com/sagernet/sing-fetch/fetch/mimesniff"
)

// BodyHolder is implemented by request/response-like objects carrying an
// optional body and the MIME type sniffed from their headers.
type BodyHolder interface {
	Body() *Body
	MimeType() *mimesniff.MimeType
}

// IsUnusable reports whether consumption of the holder's body must be
// rejected: the body exists and its stream is disturbed or locked.
//
// It is evaluated once at the start of a consumption attempt; a read that
// began on a usable body runs to completion even though it disturbs the
// stream as its own side effect.
func IsUnusable(holder BodyHolder) bool {
	body := holder.Body()
	return body != nil && (body.Stream().IsDisturbed() || body.Stream().IsLocked())
}

// BodyUsed reports whether a read of the holder's body has been initiated.
func BodyUsed(holder BodyHolder) bool {
	body := holder.Body()
	return body != nil && body.Stream().IsDisturbed()
}

// Converter turns fully read body bytes into a typed representation. It must
// be pure: no side effects, and equal bytes produce equivalent values across
// independent calls.
type Converter[T any] func(data []byte) (T, error)

// ConsumeBody runs the generic consumption steps: reject unusable bodies,
// treat an absent body as an empty byte sequence, otherwise fully read the
// body, then apply convert and settle the returned promise with the value, a
// ConversionError, or ErrReadFailure. The promise settles exactly once.
func ConsumeBody[T any](holder BodyHolder, destination *task.Destination, convert Converter[T]) *promise.Promise[T] {
	if IsUnusable(holder) {
		return promise.Rejected[T](ErrBodyUnusable)
	}
	result := promise.New[T]()
	successSteps := func(data []byte) {
		value, err := convert(data)
		if err != nil {
			result.Reject(&ConversionError{Inner: err})
		} else {
			result.Resolve(value)
		}
	}
	body := holder.Body()
	if body == nil {
		successSteps(nil)
		return result
	}
	body.FullRead(successSteps, func() {
		result.Reject(ErrReadFailure)
	}, destination)
	return result
}
