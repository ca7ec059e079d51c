package trynexttest

import (
	"fmt"
	"reflect"

	"github.com/go-test/deep"
	trynext "github.com/ikhomyakov/try-next"
	"golang.org/x/sync/errgroup"
)

// TestProducer checks that producers built by newProducer conform to the trynext.Producer contract, returning false
// and reporting each problem via t.Errorf, if they do not. Each run creates a fresh instance and steps it, one call
// at a time, recording every result. Every outcome must be valid, and every run must record the same sequence, i.e.
// producers must be deterministic given the same initial state. Producer-specific guarantees, regarding what happens
// after end-of-sequence or failure, may be checked using the EndIsTerminal and FailureIsTerminal options.
//
// Equality is decided by reflect.DeepEqual, which includes unexported fields, and differences are described using
// github.com/go-test/deep.
// NOTE a panic will occur if newProducer is nil.
func TestProducer[T, E any](t TestingT, newProducer func() trynext.Producer[T, E], options ...Option) bool {
	t.Helper()
	if newProducer == nil {
		panic("trynexttest.TestProducer requires non-nil newProducer")
	}
	const name = "trynexttest.TestProducer"

	c, err := resolveConfig(options)
	if err != nil {
		t.Errorf("%s config error: %s", name, err)
		return false
	}

	runs := make([][]Step[T, E], c.runs)
	if err := c.each(len(runs), func(i int) error {
		p := newProducer()
		if p == nil {
			return fmt.Errorf("run %d: nil producer", i)
		}
		runs[i] = Record(Exclusive(p), c.steps)
		return nil
	}); err != nil {
		t.Errorf("%s %s", name, err)
		return false
	}

	return checkRuns(t, c, name, runs, func(i int) string { return fmt.Sprintf("run %d", i) })
}

// TestContextProducer is equivalent to TestProducer, for trynext.ContextProducer, where each run starts with a
// context from newContext. Half the runs pass the same context instance to every call, and the other half alternate
// between two instances, copying the contents of the previous instance into the next, then overwriting the previous
// with the zero value, before each call. All runs must record the same sequence, and end with equal context
// contents, meaning producers must only depend on the contents of the context supplied to the current call.
//
// Contexts are copied by assignment, and compared in the same way as steps.
// NOTE a panic will occur if newProducer or newContext are nil.
func TestContextProducer[T, E, C any](t TestingT, newProducer func() trynext.ContextProducer[T, E, C], newContext func() C, options ...Option) bool {
	t.Helper()
	if newProducer == nil {
		panic("trynexttest.TestContextProducer requires non-nil newProducer")
	}
	if newContext == nil {
		panic("trynexttest.TestContextProducer requires non-nil newContext")
	}
	const name = "trynexttest.TestContextProducer"

	c, err := resolveConfig(options)
	if err != nil {
		t.Errorf("%s config error: %s", name, err)
		return false
	}

	var (
		runs   = make([][]Step[T, E], c.runs*2)
		finals = make([]C, len(runs))
	)
	if err := c.each(len(runs), func(i int) error {
		p := newProducer()
		if p == nil {
			return fmt.Errorf("run %d: nil producer", i)
		}
		x := ExclusiveWith(p)

		if i%2 == 0 {
			ctx := newContext()
			runs[i] = RecordWith(x, c.steps, func(int) *C { return &ctx })
			finals[i] = ctx
			return nil
		}

		var pair [2]C
		pair[0] = newContext()
		runs[i] = RecordWith(x, c.steps, func(j int) *C {
			if j == 0 {
				return &pair[0]
			}
			prev, next := &pair[(j-1)%2], &pair[j%2]
			*next = *prev
			*prev = *new(C)
			return next
		})
		finals[i] = pair[(c.steps-1)%2]
		return nil
	}); err != nil {
		t.Errorf("%s %s", name, err)
		return false
	}

	describe := func(i int) string {
		if i%2 == 0 {
			return fmt.Sprintf("run %d (single context)", i)
		}
		return fmt.Sprintf("run %d (alternating contexts)", i)
	}

	ok := checkRuns(t, c, name, runs, describe)
	for i := 1; i < len(finals); i++ {
		if diff := compare(finals[0], finals[i]); diff != nil {
			t.Errorf("%s %s final context differs from %s: %v", name, describe(i), describe(0), diff)
			ok = false
		}
	}
	return ok
}

// each calls fn for every run, from separate goroutines, converting any panic into an error
func (c *config) each(n int, fn func(i int) error) error {
	var g errgroup.Group
	if c.parallelism > 0 {
		g.SetLimit(c.parallelism)
	}
	for i := 0; i < n; i++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("run %d panicked: %v", i, r)
				}
			}()
			return fn(i)
		})
	}
	return g.Wait()
}

func checkRuns[T, E any](t TestingT, c *config, name string, runs [][]Step[T, E], describe func(i int) string) bool {
	t.Helper()

	ok := true

	for i, run := range runs {
		for j, step := range run {
			if !step.Outcome.Valid() {
				t.Errorf("%s %s step %d: invalid outcome: %s", name, describe(i), j, step.Outcome)
				ok = false
			}
		}
	}

	for i := 1; i < len(runs); i++ {
		if diff := compare(runs[0], runs[i]); diff != nil {
			t.Errorf("%s %s diverged from %s: %v", name, describe(i), describe(0), diff)
			ok = false
		}
	}

	if len(runs) != 0 && !checkTerminal(t, c, name, runs[0]) {
		ok = false
	}

	return ok
}

func checkTerminal[T, E any](t TestingT, c *config, name string, steps []Step[T, E]) bool {
	t.Helper()

	ok := true

	if c.endIsTerminal {
		if first := indexOutcome(steps, trynext.End); first >= 0 {
			for j := first + 1; j < len(steps); j++ {
				if steps[j].Outcome != trynext.End {
					t.Errorf("%s step %d: expected end after end at step %d, got %s", name, j, first, steps[j])
					ok = false
					break
				}
			}
		}
	}

	if c.failureIsTerminal {
		if first := indexOutcome(steps, trynext.Failure); first >= 0 {
			for j := first + 1; j < len(steps); j++ {
				if diff := compare(steps[first], steps[j]); diff != nil {
					t.Errorf("%s step %d: expected %s after failure at step %d, got %s: %v", name, j, steps[first], first, steps[j], diff)
					ok = false
					break
				}
			}
		}
	}

	return ok
}

func indexOutcome[T, E any](steps []Step[T, E], outcome trynext.Outcome) int {
	for i, step := range steps {
		if step.Outcome == outcome {
			return i
		}
	}
	return -1
}

// compare returns nil if a and b are deeply equal, otherwise a description of the differences
func compare(a, b any) []string {
	if reflect.DeepEqual(a, b) {
		return nil
	}
	if diff := deep.Equal(a, b); diff != nil {
		return diff
	}
	// deep ignores unexported fields
	return []string{fmt.Sprintf("%v != %v", a, b)}
}
