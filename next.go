package trynext

// Next calls p.TryNext, unpacking the result into the conventional form for producers using the error interface.
// Exactly one of the following holds: ok is true and err is nil (an item), ok is false and err is nil
// (end-of-sequence), or ok is false and err is non-nil (a failure). A failure holding a nil error is reported as
// ErrNilFailure.
func Next[T any](p Producer[T, error]) (item T, ok bool, err error) {
	if p == nil {
		panic("trynext.Next requires non-nil producer")
	}
	return unpack(p.TryNext())
}

// NextWith is equivalent to Next, for a ContextProducer.
func NextWith[T, C any](p ContextProducer[T, error, C], c *C) (item T, ok bool, err error) {
	if p == nil {
		panic("trynext.NextWith requires non-nil producer")
	}
	return unpack(p.TryNext(c))
}

func unpack[T any](r Result[T, error]) (item T, ok bool, err error) {
	item, ok, err = r.Get()
	if r.outcome == Failure && err == nil {
		err = ErrNilFailure
	}
	return
}
