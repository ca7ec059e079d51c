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

package trynext

import (
	"fmt"
	"strconv"
)

// Some returns a Result holding item.
func Some[T, E any](item T) Result[T, E] {
	return Result[T, E]{outcome: Item, item: item}
}

// None returns a Result indicating end-of-sequence, equivalent to the zero value.
func None[T, E any]() Result[T, E] {
	return Result[T, E]{}
}

// Fail returns a Result holding err. Note that the outcome is always Failure, even if err is a zero value, e.g. a
// nil error interface.
func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{outcome: Failure, err: err}
}

// Outcome returns which of the three outcomes r holds.
func (r Result[T, E]) Outcome() Outcome { return r.outcome }

func (r Result[T, E]) IsItem() bool { return r.outcome == Item }

func (r Result[T, E]) IsEnd() bool { return r.outcome == End }

func (r Result[T, E]) IsFailure() bool { return r.outcome == Failure }

// Value returns the item, and true, if r holds an item, otherwise the zero value and false.
func (r Result[T, E]) Value() (item T, ok bool) {
	if r.outcome == Item {
		return r.item, true
	}
	return
}

// Err returns the error, and true, if r is a failure, otherwise the zero value and false.
func (r Result[T, E]) Err() (err E, ok bool) {
	if r.outcome == Failure {
		return r.err, true
	}
	return
}

// Get unpacks r into the conventional form, where ok is true only for an item. Note that a failure holding a zero
// value error is indistinguishable from end-of-sequence using Get alone, see also Next.
func (r Result[T, E]) Get() (item T, ok bool, err E) {
	switch r.outcome {
	case Item:
		item, ok = r.item, true
	case Failure:
		err = r.err
	}
	return
}

// String is provided for diagnostics, and formats any held value using the %v verb.
func (r Result[T, E]) String() string {
	switch r.outcome {
	case Item:
		return fmt.Sprintf("item(%v)", r.item)
	case Failure:
		return fmt.Sprintf("failure(%v)", r.err)
	default:
		return r.outcome.String()
	}
}

// Valid returns true if o is one of End, Item, or Failure.
func (o Outcome) Valid() bool { return o <= Failure }

func (o Outcome) String() string {
	switch o {
	case End:
		return "end"
	case Item:
		return "item"
	case Failure:
		return "failure"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}
