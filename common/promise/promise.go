package promise

import (
	"context"
	"sync"

	"github.com/sagernet/sing-fetch/common"
)

// Promise is a single-resolution future: it settles exactly once, with either
// a value or an error. Settlement is observable only through Done, Await or
// Result, so a holder handed a fresh promise can never see it settle before
// the call that created it returns.
type Promise[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func New[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Resolved returns an already-fulfilled promise.
func Resolved[T any](value T) *Promise[T] {
	promise := New[T]()
	promise.Resolve(value)
	return promise
}

// Rejected returns an already-failed promise.
func Rejected[T any](err error) *Promise[T] {
	promise := New[T]()
	promise.Reject(err)
	return promise
}

// Resolve fulfills the promise. Settlement attempts after the first are
// no-ops.
func (p *Promise[T]) Resolve(value T) {
	p.once.Do(func() {
		p.value = value
		close(p.done)
	})
}

// Reject fails the promise. Settlement attempts after the first are no-ops.
func (p *Promise[T]) Reject(err error) {
	p.once.Do(func() {
		p.err = err
		close(p.done)
	})
}

func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

func (p *Promise[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Result returns the settlement. Only valid once Done is closed.
func (p *Promise[T]) Result() (T, error) {
	return p.value, p.err
}

func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return common.DefaultValue[T](), ctx.Err()
	}
}
