// Package sys
// Author: momentics <momentics@gmail.com>
//
// Errno-safe invocation cores. A Thunk performs exactly one raw OS call and
// hands back the raw count together with the code the call itself returned.
// The code must come out of the raw call's own return path: the thunk must
// not allocate, wrap or log between the call and the return, or the
// observed code is no longer the authoritative one.

package sys

import (
	"syscall"

	"github.com/momentics/hioload-sys/api"
)

// Thunk performs one raw OS call. n is the raw non-negative result, or the
// partial progress already made when errno reports would-block (zero for
// operations without partial-transfer tracking). errno is zero on success.
type Thunk func() (n int, errno syscall.Errno)

// Invoke runs fn until it either succeeds or fails with anything other
// than the interrupted-call code. blocking marks operations that may
// legitimately report would-block; for those the would-block code becomes
// api.WouldBlock carrying the thunk's partial count instead of an error.
// Unacceptable codes (closed descriptor, bad address) panic with
// *api.Fault: they are caller bugs, not environmental conditions.
func Invoke(blocking bool, op string, fn Thunk) (api.Outcome, error) {
	for {
		n, errno := fn()
		if errno == 0 {
			return api.Processed(n), nil
		}
		if errno == errInterrupted {
			continue
		}
		if blocking && isWouldBlock(errno) {
			return api.WouldBlock(n), nil
		}
		if isUnacceptable(errno) {
			panic(&api.Fault{Errno: errno, Op: op})
		}
		return api.Outcome{}, &api.OsError{Errno: errno, Op: op}
	}
}

// InvokeValue is the sibling core for primitives whose failure shows up as
// an absent value rather than a negative count. Retry and fault policy
// match Invoke; there is no would-block concept in this call class, so the
// produced value is returned directly.
func InvokeValue[T any](op string, fn func() (T, syscall.Errno)) (T, error) {
	for {
		v, errno := fn()
		if errno == 0 {
			return v, nil
		}
		if errno == errInterrupted {
			continue
		}
		if isUnacceptable(errno) {
			panic(&api.Fault{Errno: errno, Op: op})
		}
		var zero T
		return zero, &api.OsError{Errno: errno, Op: op}
	}
}

// errnoOf pulls the raw code straight out of an x/sys return value.
func errnoOf(err error) syscall.Errno {
	if err == nil {
		return 0
	}
	if en, ok := err.(syscall.Errno); ok {
		return en
	}
	return syscall.EIO
}

// clamp folds the -1 failure sentinel into a zero count.
func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
