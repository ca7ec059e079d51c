package trynexttest

import (
	"sync/atomic"

	trynext "github.com/ikhomyakov/try-next"
)

// guard detects overlapping calls, it never blocks
type guard struct {
	busy atomic.Bool
}

// Exclusive wraps p, panicking with ErrConcurrentCall if a call to TryNext starts while another is in progress.
// It is intended to catch callers that violate the exclusive access requirement, and does not serialise calls.
// NOTE a panic will occur if p is nil.
func Exclusive[T, E any](p trynext.Producer[T, E]) trynext.Producer[T, E] {
	if p == nil {
		panic("trynexttest.Exclusive requires non-nil producer")
	}
	return &exclusive[T, E]{producer: p}
}

// ExclusiveWith is equivalent to Exclusive, for a ContextProducer.
func ExclusiveWith[T, E, C any](p trynext.ContextProducer[T, E, C]) trynext.ContextProducer[T, E, C] {
	if p == nil {
		panic("trynexttest.ExclusiveWith requires non-nil producer")
	}
	return &exclusiveWith[T, E, C]{producer: p}
}

func (x *exclusive[T, E]) TryNext() trynext.Result[T, E] {
	x.enter()
	defer x.exit()
	return x.producer.TryNext()
}

func (x *exclusiveWith[T, E, C]) TryNext(c *C) trynext.Result[T, E] {
	x.enter()
	defer x.exit()
	return x.producer.TryNext(c)
}

func (g *guard) enter() {
	if !g.busy.CompareAndSwap(false, true) {
		panic(ErrConcurrentCall)
	}
}

func (g *guard) exit() { g.busy.Store(false) }
