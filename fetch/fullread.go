package fetch

import (
	"bytes"
	"io"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/sagernet/sing-fetch/common/task"
	"github.com/sagernet/sing-fetch/fetch/streams"
)

// FullRead drains the body's source into one contiguous byte sequence and
// invokes exactly one of processBody or processBodyError, each as a task on
// the given destination, never on the caller's stack. A nil destination
// starts a fresh queue.
//
// The body's stream becomes disturbed before FullRead returns. Once started,
// the read runs to success or failure; a concurrent read on the same stream
// is rejected at reader acquisition.
func (b *Body) FullRead(processBody func(data []byte), processBodyError func(), destination *task.Destination) {
	if destination == nil {
		destination = task.NewDestination()
	}
	successSteps := func(data []byte) {
		destination.Schedule(func() {
			processBody(data)
		})
	}
	errorSteps := func() {
		destination.Schedule(processBodyError)
	}
	reader, err := b.source.stream.AcquireReader()
	if err != nil {
		errorSteps()
		return
	}
	if b.source.buffered {
		// The captured payload is delivered verbatim; the stream only
		// tracked the read state.
		reader.Release()
		successSteps(b.source.data)
		return
	}
	gopool.Go(func() {
		readAll(reader, successSteps, errorSteps)
	})
}

func readAll(reader *streams.Reader, successSteps func(data []byte), errorSteps func()) {
	var data bytes.Buffer
	for {
		chunk, err := reader.Pull()
		if err != nil {
			reader.Release()
			if err == io.EOF {
				successSteps(data.Bytes())
			} else {
				errorSteps()
			}
			return
		}
		data.Write(chunk)
	}
}
