package fetch

import (
	E "github.com/sagernet/sing-fetch/common/exceptions"
	form "github.com/sagernet/sing-fetch/fetch/formdata"
	"github.com/sagernet/sing-fetch/fetch/streams"
)

// Origin records where a body's payload came from.
type Origin int

const (
	// OriginStream: the payload only ever existed as a stream.
	OriginStream Origin = iota
	// OriginBuffer: the payload was extracted from a byte sequence.
	OriginBuffer
	// OriginFormData: the payload was extracted from a form entry list.
	OriginFormData
)

// Body owns a ByteSource plus provenance metadata. A body is consumed by at
// most one full read per stream; afterwards the stream stays disturbed and
// the body is unusable.
type Body struct {
	source    ByteSource
	origin    Origin
	length    uint64
	hasLength bool
}

func NewBody(source ByteSource) *Body {
	return &Body{source: source}
}

// BufferedBody returns a body whose payload is the given byte sequence, with
// the declared length set accordingly.
func BufferedBody(data []byte) *Body {
	return &Body{
		source:    BufferedSource(data),
		origin:    OriginBuffer,
		length:    uint64(len(data)),
		hasLength: true,
	}
}

// FormDataBody encodes the entry list as multipart/form-data and returns the
// resulting body together with the content type carrying the boundary.
func FormDataBody(formData *form.FormData) (*Body, string, error) {
	data, contentType, err := formData.EncodeMultipart()
	if err != nil {
		return nil, "", err
	}
	return &Body{
		source:    BufferedSource(data),
		origin:    OriginFormData,
		length:    uint64(len(data)),
		hasLength: true,
	}, contentType, nil
}

// StreamBody returns a body over a stream, with no declared length.
func StreamBody(stream *streams.Stream) *Body {
	return &Body{source: StreamedSource(stream)}
}

func (b *Body) SetLength(length uint64) {
	b.length = length
	b.hasLength = true
}

func (b *Body) Source() ByteSource {
	return b.source
}

func (b *Body) Stream() *streams.Stream {
	return b.source.stream
}

func (b *Body) Origin() Origin {
	return b.origin
}

// Length returns the declared total length, if one was declared.
func (b *Body) Length() (uint64, bool) {
	return b.length, b.hasLength
}

// Clone tees the body's stream: the body keeps one branch and the returned
// body wraps the other, so both observe the identical byte sequence and
// neither read disturbs the other. Provenance and declared length are
// copied. Cloning a locked or disturbed body fails.
func (b *Body) Clone() (*Body, error) {
	out1, out2, err := b.source.stream.Tee()
	if err != nil {
		return nil, E.Cause(err, "clone body")
	}
	b.source.stream = out1
	clone := *b
	clone.source.stream = out2
	return &clone, nil
}
