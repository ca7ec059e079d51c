package trynext_test

import (
	"testing"

	"github.com/go-test/deep"
	trynext "github.com/ikhomyakov/try-next"
	"github.com/ikhomyakov/try-next/trynexttest"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProducer_properties checks, for producers of random shape, that every call reports exactly one valid outcome,
// and that fresh instances with the same initial state reproduce the same sequence, when stepped one call at a time.
func TestProducer_properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("scripted producers follow items, end, then failures", prop.ForAll(
		func(limit, extra int) bool {
			steps := trynexttest.Record[int, error](trynexttest.Exclusive[int, error](&scripted{limit: limit}), limit+1+extra)
			for i, step := range steps {
				var expected trynexttest.Step[int, error]
				switch {
				case i < limit:
					expected = trynexttest.Step[int, error]{Outcome: trynext.Item, Item: i}
				case i == limit:
					expected = trynexttest.Step[int, error]{Outcome: trynext.End}
				default:
					expected = trynexttest.Step[int, error]{Outcome: trynext.Failure, Err: errScripted}
				}
				if diff := deep.Equal(step, expected); diff != nil {
					t.Logf("limit=%d step=%d: %v", limit, i, diff)
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 50),
		gen.IntRange(0, 10),
	))

	properties.Property("fresh failable counters reproduce the same sequence", prop.ForAll(
		func(start, failAt, n int) bool {
			a := trynexttest.Record[int, unitErr](&failableCounter{current: start, failAt: failAt}, n)
			b := trynexttest.Record[int, unitErr](&failableCounter{current: start, failAt: failAt}, n)
			if diff := deep.Equal(a, b); diff != nil {
				t.Logf("start=%d failAt=%d: %v", start, failAt, diff)
				return false
			}
			for _, step := range a {
				if !step.Outcome.Valid() || step.Outcome == trynext.End {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 20),
		gen.IntRange(0, 40),
		gen.IntRange(0, 60),
	))

	properties.Property("context counters only depend on context contents", prop.ForAll(
		func(counter, limit, n int) bool {
			single := countContext{Counter: counter, Limit: limit}
			expected := trynexttest.RecordWith[int, error, countContext](stepCounter{}, n, func(int) *countContext { return &single })

			// a fresh instance on every call, clearing the previous one
			prev := &countContext{Counter: counter, Limit: limit}
			actual := trynexttest.RecordWith[int, error, countContext](stepCounter{}, n, func(int) *countContext {
				next := new(countContext)
				*next = *prev
				*prev = countContext{}
				prev = next
				return next
			})

			if diff := deep.Equal(expected, actual); diff != nil {
				t.Logf("counter=%d limit=%d: %v", counter, limit, diff)
				return false
			}
			return true
		},
		gen.IntRange(0, 10),
		gen.IntRange(0, 20),
		gen.IntRange(1, 30),
	))

	properties.TestingRun(t)
}
