package streams

import "sync"

// Tee forks the stream into two branches observing the identical chunk
// sequence, pulled from the parent lazily and exactly once per chunk. The
// parent's reader is claimed by the shared pump, so teeing a locked stream
// fails with ErrLocked and teeing a disturbed stream with ErrDisturbed.
func (s *Stream) Tee() (*Stream, *Stream, error) {
	if s.IsDisturbed() {
		return nil, nil, ErrDisturbed
	}
	reader, err := s.AcquireReader()
	if err != nil {
		return nil, nil, err
	}
	source := &teeSource{reader: reader}
	return New(source.pullFor(0)), New(source.pullFor(1)), nil
}

// teeSource fans parent chunks out to both branch queues. Chunks are shared
// between the branches and treated as read-only.
type teeSource struct {
	access sync.Mutex
	reader *Reader
	queues [2][][]byte
	err    error
}

func (t *teeSource) pullFor(index int) PullFunc {
	return func() ([]byte, error) {
		return t.pull(index)
	}
}

func (t *teeSource) pull(index int) ([]byte, error) {
	t.access.Lock()
	defer t.access.Unlock()
	for {
		if len(t.queues[index]) > 0 {
			chunk := t.queues[index][0]
			t.queues[index] = t.queues[index][1:]
			return chunk, nil
		}
		if t.err != nil {
			return nil, t.err
		}
		chunk, err := t.reader.Pull()
		if err != nil {
			t.err = err
			continue
		}
		t.queues[0] = append(t.queues[0], chunk)
		t.queues[1] = append(t.queues[1], chunk)
	}
}
