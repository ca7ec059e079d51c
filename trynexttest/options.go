package trynexttest

import (
	"fmt"
)

// Steps sets the number of calls made per run, which must be greater than 0.
func Steps(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf(`trynexttest.Steps invalid value: %d`, n)
		}
		c.steps = n
		return nil
	}
}

// Runs sets the number of fresh instances that will be created and stepped, which must be greater than 0. Every run
// must record an identical sequence of steps.
func Runs(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf(`trynexttest.Runs invalid value: %d`, n)
		}
		c.runs = n
		return nil
	}
}

// Parallelism limits the number of runs that may be in progress at once, which must be greater than 0. Each
// instance is only ever stepped by one goroutine, but separate instances are stepped concurrently by default, use
// Parallelism(1) if the instances share state, e.g. an underlying reader.
func Parallelism(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf(`trynexttest.Parallelism invalid value: %d`, n)
		}
		c.parallelism = n
		return nil
	}
}

// EndIsTerminal asserts the producer documents that once it reports end-of-sequence, every subsequent call will
// also report end-of-sequence.
func EndIsTerminal() Option {
	return func(c *config) error {
		c.endIsTerminal = true
		return nil
	}
}

// FailureIsTerminal asserts the producer documents that once it reports a failure, every subsequent call will
// report an equal failure.
func FailureIsTerminal() Option {
	return func(c *config) error {
		c.failureIsTerminal = true
		return nil
	}
}

func resolveConfig(options []Option) (*config, error) {
	c := &config{
		steps: DefaultSteps,
		runs:  DefaultRuns,
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		if err := option(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
