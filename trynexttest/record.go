package trynexttest

import (
	trynext "github.com/ikhomyakov/try-next"
)

// Record calls p.TryNext exactly n times, one call at a time, and returns each result, in order. Note that it will
// keep calling after end-of-sequence or failure, since what happens then is up to the producer.
// NOTE a panic will occur if p is nil or n is negative.
func Record[T, E any](p trynext.Producer[T, E], n int) []Step[T, E] {
	if p == nil {
		panic("trynexttest.Record requires non-nil producer")
	}
	if n < 0 {
		panic("trynexttest.Record requires non-negative n")
	}
	steps := make([]Step[T, E], n)
	for i := range steps {
		steps[i] = StepOf(p.TryNext())
	}
	return steps
}

// RecordWith is equivalent to Record, for a ContextProducer, where the context for the i-th call (from 0) is
// provided by contexts, which is called immediately prior to each call.
// NOTE a panic will occur if p or contexts are nil, or n is negative.
func RecordWith[T, E, C any](p trynext.ContextProducer[T, E, C], n int, contexts func(i int) *C) []Step[T, E] {
	if p == nil {
		panic("trynexttest.RecordWith requires non-nil producer")
	}
	if contexts == nil {
		panic("trynexttest.RecordWith requires non-nil contexts")
	}
	if n < 0 {
		panic("trynexttest.RecordWith requires non-negative n")
	}
	steps := make([]Step[T, E], n)
	for i := range steps {
		steps[i] = StepOf(p.TryNext(contexts(i)))
	}
	return steps
}

// Drain calls p.TryNext until it reports end-of-sequence or failure, returning the items produced before that
// point, and, if it failed, the error. Note that Drain will not return if p produces items indefinitely.
func Drain[T, E any](p trynext.Producer[T, E]) (items []T, err E, failed bool) {
	if p == nil {
		panic("trynexttest.Drain requires non-nil producer")
	}
	for {
		r := p.TryNext()
		if item, ok := r.Value(); ok {
			items = append(items, item)
			continue
		}
		err, failed = r.Err()
		return
	}
}

// DrainWith is equivalent to Drain, for a ContextProducer, passing c to every call.
func DrainWith[T, E, C any](p trynext.ContextProducer[T, E, C], c *C) (items []T, err E, failed bool) {
	if p == nil {
		panic("trynexttest.DrainWith requires non-nil producer")
	}
	for {
		r := p.TryNext(c)
		if item, ok := r.Value(); ok {
			items = append(items, item)
			continue
		}
		err, failed = r.Err()
		return
	}
}
