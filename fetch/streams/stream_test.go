package streams_test

import (
	"io"
	"testing"

	"github.com/sagernet/sing-fetch/fetch/streams"

	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, stream *streams.Stream) []byte {
	reader, err := stream.AcquireReader()
	require.NoError(t, err)
	defer reader.Release()
	var data []byte
	for {
		chunk, err := reader.Pull()
		if err == io.EOF {
			return data
		}
		require.NoError(t, err)
		data = append(data, chunk...)
	}
}

func TestMemoryStream(t *testing.T) {
	t.Parallel()
	stream := streams.Memory([]byte("a"), []byte("bc"), []byte("def"))
	require.Equal(t, []byte("abcdef"), readAll(t, stream))
}

func TestMemoryStreamEmpty(t *testing.T) {
	t.Parallel()
	stream := streams.Memory()
	require.Empty(t, readAll(t, stream))
}

func TestStreamState(t *testing.T) {
	t.Parallel()
	stream := streams.Memory([]byte("data"))
	require.False(t, stream.IsDisturbed())
	require.False(t, stream.IsLocked())

	reader, err := stream.AcquireReader()
	require.NoError(t, err)
	require.True(t, stream.IsDisturbed())
	require.True(t, stream.IsLocked())

	_, err = stream.AcquireReader()
	require.ErrorIs(t, err, streams.ErrLocked)

	reader.Release()
	require.False(t, stream.IsLocked())
	// Disturbed is monotonic.
	require.True(t, stream.IsDisturbed())
}

func TestReaderReleased(t *testing.T) {
	t.Parallel()
	stream := streams.Memory([]byte("data"))
	reader, err := stream.AcquireReader()
	require.NoError(t, err)
	reader.Release()
	reader.Release()
	_, err = reader.Pull()
	require.ErrorIs(t, err, streams.ErrReleased)
}

func TestPullError(t *testing.T) {
	t.Parallel()
	stream := streams.New(func() ([]byte, error) {
		return nil, io.ErrUnexpectedEOF
	})
	reader, err := stream.AcquireReader()
	require.NoError(t, err)
	defer reader.Release()
	_, err = reader.Pull()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestTee(t *testing.T) {
	t.Parallel()
	stream := streams.Memory([]byte("one"), []byte("two"))
	out1, out2, err := stream.Tee()
	require.NoError(t, err)
	require.False(t, out1.IsDisturbed())
	require.False(t, out2.IsDisturbed())

	require.Equal(t, []byte("onetwo"), readAll(t, out1))
	require.False(t, out2.IsDisturbed())
	require.Equal(t, []byte("onetwo"), readAll(t, out2))
}

func TestTeeInterleaved(t *testing.T) {
	t.Parallel()
	stream := streams.Memory([]byte("a"), []byte("b"))
	out1, out2, err := stream.Tee()
	require.NoError(t, err)

	reader1, err := out1.AcquireReader()
	require.NoError(t, err)
	reader2, err := out2.AcquireReader()
	require.NoError(t, err)

	chunk, err := reader1.Pull()
	require.NoError(t, err)
	require.Equal(t, []byte("a"), chunk)
	chunk, err = reader2.Pull()
	require.NoError(t, err)
	require.Equal(t, []byte("a"), chunk)
	chunk, err = reader2.Pull()
	require.NoError(t, err)
	require.Equal(t, []byte("b"), chunk)
	_, err = reader2.Pull()
	require.ErrorIs(t, err, io.EOF)
	chunk, err = reader1.Pull()
	require.NoError(t, err)
	require.Equal(t, []byte("b"), chunk)
	_, err = reader1.Pull()
	require.ErrorIs(t, err, io.EOF)
}

func TestTeeLocked(t *testing.T) {
	t.Parallel()
	stream := streams.Memory([]byte("data"))
	reader, err := stream.AcquireReader()
	require.NoError(t, err)
	defer reader.Release()
	_, _, err = stream.Tee()
	require.Error(t, err)
}

func TestTeeDisturbed(t *testing.T) {
	t.Parallel()
	stream := streams.Memory([]byte("data"))
	reader, err := stream.AcquireReader()
	require.NoError(t, err)
	reader.Release()
	_, _, err = stream.Tee()
	require.ErrorIs(t, err, streams.ErrDisturbed)
}

func TestTeeError(t *testing.T) {
	t.Parallel()
	stream := streams.New(func() ([]byte, error) {
		return nil, io.ErrUnexpectedEOF
	})
	out1, out2, err := stream.Tee()
	require.NoError(t, err)
	for _, branch := range []*streams.Stream{out1, out2} {
		reader, err := branch.AcquireReader()
		require.NoError(t, err)
		_, err = reader.Pull()
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		reader.Release()
	}
}
