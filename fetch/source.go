package fetch

import (
	"github.com/sagernet/sing-fetch/fetch/streams"
)

// ByteSource is a body's payload: either a fully materialized byte buffer or
// a lazily produced stream. Both kinds carry a stream handle, which owns the
// disturbed and locked state; for a buffered source the stream replays the
// captured bytes.
type ByteSource struct {
	data     []byte
	buffered bool
	stream   *streams.Stream
}

// BufferedSource captures a byte sequence as a source. The bytes are not
// copied and must not be mutated afterwards.
func BufferedSource(data []byte) ByteSource {
	return ByteSource{data: data, buffered: true, stream: streams.Memory(data)}
}

// StreamedSource wraps a stream as a source.
func StreamedSource(stream *streams.Stream) ByteSource {
	return ByteSource{stream: stream}
}

func (s ByteSource) IsBuffered() bool {
	return s.buffered
}

func (s ByteSource) Stream() *streams.Stream {
	return s.stream
}
