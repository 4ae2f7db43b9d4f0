// Package api
// Author: momentics <momentics@gmail.com>
//
// Two-variant result of a single raw OS call.

package api

// Outcome reports how one raw OS call ended. Either the call completed and
// N holds its non-negative raw return (an element count, a descriptor or a
// status), or the call could not proceed without suspending and N holds the
// partial progress made before the would-block condition (zero unless the
// operation tracks partial byte transfer).
type Outcome struct {
	N     int
	Again bool
}

// Processed wraps a completed raw return value.
func Processed(n int) Outcome {
	return Outcome{N: n}
}

// WouldBlock marks an operation that must be retried after readiness.
// progress is the amount of work already done before the call stalled.
func WouldBlock(progress int) Outcome {
	return Outcome{N: progress, Again: true}
}

// Completed reports whether the call finished without a would-block signal.
func (o Outcome) Completed() bool {
	return !o.Again
}
