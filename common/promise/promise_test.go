package promise_test

import (
	"context"
	"testing"
	"time"

	"github.com/sagernet/sing-fetch/common/exceptions"
	"github.com/sagernet/sing-fetch/common/promise"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()
	p := promise.New[int]()
	require.False(t, p.Settled())
	p.Resolve(42)
	require.True(t, p.Settled())
	value, err := p.Result()
	require.NoError(t, err)
	require.Equal(t, 42, value)
}

func TestReject(t *testing.T) {
	t.Parallel()
	rejected := exceptions.New("rejected")
	p := promise.New[int]()
	p.Reject(rejected)
	_, err := p.Result()
	require.ErrorIs(t, err, rejected)
}

func TestSettleOnce(t *testing.T) {
	t.Parallel()
	p := promise.New[string]()
	p.Resolve("first")
	p.Resolve("second")
	p.Reject(exceptions.New("late"))
	value, err := p.Result()
	require.NoError(t, err)
	require.Equal(t, "first", value)
}

func TestAwait(t *testing.T) {
	t.Parallel()
	p := promise.New[string]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Resolve("done")
	}()
	value, err := p.Await(context.Background())
	require.NoError(t, err)
	require.Equal(t, "done", value)
}

func TestAwaitCanceled(t *testing.T) {
	t.Parallel()
	p := promise.New[string]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Await(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, p.Settled())
}

func TestConstructors(t *testing.T) {
	t.Parallel()
	value, err := promise.Resolved("ready").Result()
	require.NoError(t, err)
	require.Equal(t, "ready", value)

	rejected := exceptions.New("failed")
	_, err = promise.Rejected[string](rejected).Result()
	require.ErrorIs(t, err, rejected)
}

func TestDone(t *testing.T) {
	t.Parallel()
	p := promise.New[int]()
	select {
	case <-p.Done():
		t.Fatal("unsettled promise done")
	default:
	}
	p.Resolve(1)
	select {
	case <-p.Done():
	default:
		t.Fatal("settled promise not done")
	}
}
