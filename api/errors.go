// Package api
// Author: momentics <momentics@gmail.com>
//
// Error types for the raw syscall layer. OsError carries the numeric code
// captured at the call site plus the operation label; Fault marks codes
// that indicate a defect in the calling layer and is only ever delivered
// through panic.

package api

import (
	"fmt"
	"syscall"

	"github.com/brickingsoft/errors"
)

// Named sentinels for documented platform defects.
var (
	// ErrNonblockFailed reports the known mismatch where enabling
	// non-blocking mode fails with an invalid-argument code despite
	// documented guarantees. Callers special-case it by identity.
	ErrNonblockFailed = errors.Define("failed to enable non-blocking mode",
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal))

	// ErrBatchNotSupported reports that the host lacks a batched
	// multi-message primitive (winsock has none).
	ErrBatchNotSupported = errors.Define("batched message transfer not supported",
		errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
)

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "hioload-sys"
)

// IsNonblockFailed reports whether err is the non-blocking-mode defect.
func IsNonblockFailed(err error) bool {
	return errors.Is(err, ErrNonblockFailed)
}

// IsBatchNotSupported reports whether err is the missing-batch-primitive
// condition.
func IsBatchNotSupported(err error) bool {
	return errors.Is(err, ErrBatchNotSupported)
}

// OsError is the immutable failure report of one raw OS call: the numeric
// code read from the OS at the moment of failure, and the operation label.
// It is constructed exactly once and never reconstructed later.
type OsError struct {
	Errno syscall.Errno
	Op    string
}

// Error implements the error interface.
func (e *OsError) Error() string {
	return fmt.Sprintf("%s: %v (errno %d)", e.Op, e.Errno, int(e.Errno))
}

// Unwrap exposes the raw code so callers can branch with errors.Is on
// specific conditions.
func (e *OsError) Unwrap() error {
	return e.Errno
}

// Fault marks an unacceptable code (closed/invalid descriptor, bad buffer
// address): a caller-side bug, never an environmental condition. It is
// raised through panic and must not be swallowed as a recoverable error.
type Fault struct {
	Errno syscall.Errno
	Op    string
}

// Error implements the error interface so recovered faults still print.
func (f *Fault) Error() string {
	return fmt.Sprintf("unrecoverable %s: %v (errno %d)", f.Op, f.Errno, int(f.Errno))
}
