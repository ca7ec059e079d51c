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

// Package trynext defines a minimal contract for synchronous, fallible, pull-based item sources.
//
// A [Producer] exposes a single TryNext method, which attempts to produce the next item, and returns a [Result]
// distinguishing between three cases:
//
//   - [Item], a successfully produced item,
//   - [End], there are no more items available (the source is exhausted),
//   - [Failure], an error occurred while trying to produce the next item.
//
// A [ContextProducer] is the same contract, except that each call also receives a caller-owned context value, which
// the producer may read and mutate during the call, but must not retain.
//
// The contract is intentionally synchronous, and defines no combinators, adapters, buffering, retries or
// cancellation. It is best suited to parsers, readers, and generators that advance in discrete steps. Callers must
// not call TryNext concurrently on the same instance. What a producer returns after it first reports End or Failure
// is up to the producer, and should be documented by it.
//
// The error type is fully generic, and is never required to implement the error interface. Producers with an error
// type of error may be unpacked using [Next] and [NextWith].
package trynext

import (
	"errors"
)

const (
	// End indicates the producer has no more items. It is not an error, and is the zero value of Outcome.
	End Outcome = iota

	// Item indicates the producer advanced by exactly one step, and produced one item.
	Item

	// Failure indicates an error occurred while attempting to advance the producer.
	Failure
)

type (
	// Producer models a stateful, synchronous, fallible source of items, see the package docs for the semantics of
	// each outcome.
	Producer[T, E any] interface {
		// TryNext attempts to produce the next item. It has exclusive access to the receiver for the duration of
		// the call, and may block on external resources.
		TryNext() Result[T, E]
	}

	// ContextProducer is the generalisation of Producer for sources that need an externally supplied resource,
	// such as a shared buffer, configuration snapshot, or I/O handle.
	ContextProducer[T, E, C any] interface {
		// TryNext attempts to produce the next item, borrowing c for the duration of the call. The producer must
		// not keep a reference to c after returning, and must tolerate a different c on the next call.
		TryNext(c *C) Result[T, E]
	}

	// Func implements Producer using a closure.
	Func[T, E any] func() Result[T, E]

	// ContextFunc implements ContextProducer using a closure.
	ContextFunc[T, E, C any] func(c *C) Result[T, E]

	// Outcome is the kind of a Result.
	Outcome uint8

	// Result is the outcome of a single TryNext call, holding exactly one of an item, end-of-sequence, or an error.
	// The zero value is end-of-sequence. Use Some, None, and Fail to construct values.
	Result[T, E any] struct {
		outcome Outcome
		item    T
		err     E
	}
)

var (
	// ErrNilFailure is returned by Next and NextWith in place of a nil error carried by a Failure result.
	ErrNilFailure = errors.New("trynext: failure with nil error")

	// compile time assertions

	_ Producer[int, error]              = Func[int, error](nil)
	_ ContextProducer[int, error, bool] = ContextFunc[int, error, bool](nil)
)

func (f Func[T, E]) TryNext() Result[T, E] { return f() }

func (f ContextFunc[T, E, C]) TryNext(c *C) Result[T, E] { return f(c) }
