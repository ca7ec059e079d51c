package trynext_test

import (
	"errors"

	trynext "github.com/ikhomyakov/try-next"
)

type (
	// counter yields current..limit-1, then end-of-sequence, indefinitely
	counter struct {
		current int
		limit   int
	}

	// failableCounter yields current..failAt-1, then fails, indefinitely
	failableCounter struct {
		current int
		failAt  int
		failed  bool
	}

	// scripted yields 0..limit-1, then end-of-sequence once, then fails on every call
	scripted struct {
		current int
		limit   int
		ended   bool
	}

	// stepCounter is a stateless ContextProducer, that counts using the context it is given
	stepCounter struct{}

	countContext struct {
		Counter int
		Limit   int
	}

	unitErr struct{}
)

var (
	errScripted = errors.New("scripted: exhausted")

	// compile time assertions

	_ trynext.Producer[int, error]                      = (*counter)(nil)
	_ trynext.Producer[int, unitErr]                    = (*failableCounter)(nil)
	_ trynext.Producer[int, error]                      = (*scripted)(nil)
	_ trynext.ContextProducer[int, error, countContext] = stepCounter{}
)

func (c *counter) TryNext() trynext.Result[int, error] {
	if c.current < c.limit {
		v := c.current
		c.current++
		return trynext.Some[int, error](v)
	}
	return trynext.None[int, error]()
}

func (c *failableCounter) TryNext() trynext.Result[int, unitErr] {
	if c.failed || c.current == c.failAt {
		c.failed = true
		return trynext.Fail[int](unitErr{})
	}
	v := c.current
	c.current++
	return trynext.Some[int, unitErr](v)
}

func (s *scripted) TryNext() trynext.Result[int, error] {
	switch {
	case s.current < s.limit:
		v := s.current
		s.current++
		return trynext.Some[int, error](v)
	case !s.ended:
		s.ended = true
		return trynext.None[int, error]()
	default:
		return trynext.Fail[int](errScripted)
	}
}

func (stepCounter) TryNext(c *countContext) trynext.Result[int, error] {
	if c.Counter >= c.Limit {
		return trynext.None[int, error]()
	}
	v := c.Counter
	c.Counter++
	return trynext.Some[int, error](v)
}
