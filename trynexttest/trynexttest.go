/*
   Copyright 2025 The try-next Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package trynexttest implements utilities for testing implementations of the trynext contracts, including shared
// conformance checks for both trynext.Producer and trynext.ContextProducer.
package trynexttest

import (
	"errors"

	trynext "github.com/ikhomyakov/try-next"
)

const (
	// DefaultSteps is the number of calls made per run, by the conformance checks, by default.
	DefaultSteps = 16

	// DefaultRuns is the number of fresh instances stepped, by the conformance checks, by default.
	DefaultRuns = 4
)

type (
	// TestingT is the subset of testing.TB used by this package.
	TestingT interface {
		Helper()
		Errorf(format string, args ...any)
	}

	// Step is a recorded trynext.Result, with exported fields, which makes it suitable for use with comparison
	// libraries. Item is only set for trynext.Item, and Err only for trynext.Failure.
	Step[T, E any] struct {
		Outcome trynext.Outcome
		Item    T
		Err     E
	}

	// Option configures TestProducer and TestContextProducer, see the functions provided by this package that
	// return Option.
	Option func(c *config) error

	config struct {
		steps             int
		runs              int
		parallelism       int
		endIsTerminal     bool
		failureIsTerminal bool
	}

	exclusive[T, E any] struct {
		guard
		producer trynext.Producer[T, E]
	}

	exclusiveWith[T, E, C any] struct {
		guard
		producer trynext.ContextProducer[T, E, C]
	}
)

var (
	// ErrConcurrentCall is the panic value used by the Exclusive and ExclusiveWith wrappers, if calls overlap.
	ErrConcurrentCall = errors.New("trynexttest: concurrent TryNext call on the same producer")

	// compile time assertions

	_ trynext.Producer[int, error]              = (*exclusive[int, error])(nil)
	_ trynext.ContextProducer[int, error, bool] = (*exclusiveWith[int, error, bool])(nil)
)

// StepOf records r.
func StepOf[T, E any](r trynext.Result[T, E]) (s Step[T, E]) {
	s.Outcome = r.Outcome()
	s.Item, _ = r.Value()
	s.Err, _ = r.Err()
	return
}

func (s Step[T, E]) String() string {
	switch s.Outcome {
	case trynext.Item:
		return trynext.Some[T, E](s.Item).String()
	case trynext.Failure:
		return trynext.Fail[T](s.Err).String()
	default:
		return s.Outcome.String()
	}
}
