//go:build linux || darwin
// +build linux darwin

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Readiness poll facade. The reactor above owns all scheduling; this is
// the one-shot primitive it builds on where the kernel event queue is not
// in play.

package sys

import (
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-sys/api"
)

// Poll waits up to timeoutMs for readiness on fds, updating each entry's
// Revents. The outcome value is the number of ready descriptors; a timeout
// completes with zero. timeoutMs < 0 blocks until an event arrives.
func Poll(fds []unix.PollFd, timeoutMs int) (api.Outcome, error) {
	return Invoke(false, "poll", func() (int, syscall.Errno) {
		n, err := unix.Poll(fds, timeoutMs)
		return clamp(n), errnoOf(err)
	})
}
