package streams

import (
	"io"
	"sync"

	"github.com/sagernet/sing-fetch/common/atomic"
	E "github.com/sagernet/sing-fetch/common/exceptions"
)

var (
	ErrLocked    = E.New("stream locked by another reader")
	ErrDisturbed = E.New("stream already disturbed")
	ErrReleased  = E.New("reader already released")
)

// PullFunc produces the next chunk of a stream, returning io.EOF after the
// final chunk. Pull calls on one stream are never concurrent.
type PullFunc func() ([]byte, error)

// Stream is a readable byte stream carrying the two state bits the body
// protocol depends on: disturbed (a read has been initiated at least once,
// monotonic) and locked (an exclusive reader is currently attached). Chunks
// are pulled through a Reader obtained from AcquireReader.
type Stream struct {
	access    sync.Mutex
	pull      PullFunc
	reader    *Reader
	disturbed atomic.Bool
}

func New(pull PullFunc) *Stream {
	return &Stream{pull: pull}
}

// Memory returns a stream replaying the given chunks in order.
func Memory(chunks ...[]byte) *Stream {
	var index int
	return New(func() ([]byte, error) {
		if index == len(chunks) {
			return nil, io.EOF
		}
		chunk := chunks[index]
		index++
		return chunk, nil
	})
}

func (s *Stream) IsDisturbed() bool {
	return s.disturbed.Load()
}

func (s *Stream) IsLocked() bool {
	s.access.Lock()
	defer s.access.Unlock()
	return s.reader != nil
}

// AcquireReader attaches an exclusive reader. Attaching a reader initiates a
// read, so the stream becomes disturbed immediately and stays disturbed for
// its lifetime.
func (s *Stream) AcquireReader() (*Reader, error) {
	s.access.Lock()
	defer s.access.Unlock()
	if s.reader != nil {
		return nil, ErrLocked
	}
	reader := &Reader{stream: s}
	s.reader = reader
	s.disturbed.Store(true)
	return reader, nil
}

// Reader holds exclusive access to its stream until released.
type Reader struct {
	stream   *Stream
	released atomic.Bool
}

func (r *Reader) Pull() ([]byte, error) {
	if r.released.Load() {
		return nil, ErrReleased
	}
	return r.stream.pull()
}

// Release detaches the reader: the stream returns to unlocked while staying
// disturbed. Releasing twice is a no-op.
func (r *Reader) Release() {
	if !r.released.CompareAndSwap(false, true) {
		return
	}
	r.stream.access.Lock()
	r.stream.reader = nil
	r.stream.access.Unlock()
}
