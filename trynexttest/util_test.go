package trynexttest

import (
	"bytes"
	"fmt"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"
)

type (
	// recorder is a TestingT that records errors, for testing failure reporting
	recorder struct {
		errors []string
	}
)

var (
	// compile time assertions

	_ TestingT = (*recorder)(nil)
)

func (x *recorder) Helper() {}

func (x *recorder) Errorf(format string, args ...any) {
	x.errors = append(x.errors, fmt.Sprintf(format, args...))
}

// contains returns true if any recorded error contains all of the given substrings
func (x *recorder) contains(substrings ...string) bool {
outer:
	for _, e := range x.errors {
		for _, s := range substrings {
			if !strings.Contains(e, s) {
				continue outer
			}
		}
		return true
	}
	return false
}

func waitNumGoroutines(maxWait time.Duration, fn func(n int) bool) (n int) {
	const minWait = time.Millisecond * 10
	if maxWait < minWait {
		maxWait = minWait
	}
	count := int(maxWait / minWait)
	maxWait /= time.Duration(count)
	n = runtime.NumGoroutine()
	for i := 0; i < count && !fn(n); i++ {
		time.Sleep(maxWait)
		runtime.GC()
		n = runtime.NumGoroutine()
	}
	return
}

// checkNumGoroutines should be called at the start of the test, like:
//
//	t.Cleanup(checkNumGoroutines(t))
func checkNumGoroutines(t interface {
	Helper()
	Errorf(format string, values ...any)
}) func() {
	before := runtime.NumGoroutine()
	return func() {
		t.Helper()
		after := waitNumGoroutines(time.Second, func(n int) bool { return n <= before })
		if after > before {
			var b bytes.Buffer
			_ = pprof.Lookup("goroutine").WriteTo(&b, 1)
			t.Errorf("%s\n\nstarted with %d goroutines finished with %d", b.Bytes(), before, after)
		}
	}
}
