//go:build darwin
// +build darwin

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Darwin kernel event-queue shim: create the queue, submit a change batch
// and collect ready events. Everything else about the event loop is the
// reactor's business.

package sys

import (
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-sys/api"
)

// KqueueCreate opens a kernel event queue and returns its descriptor.
func KqueueCreate() (int, error) {
	o, err := Invoke(false, "kqueue", func() (int, syscall.Errno) {
		kq, e := unix.Kqueue()
		return clamp(kq), errnoOf(e)
	})
	if err == nil {
		unix.CloseOnExec(o.N)
	}
	return o.N, err
}

// KeventWait submits changes and collects up to len(events) ready events
// in one call; the outcome value is the event count. A nil timeout blocks
// until something is ready.
func KeventWait(kq int, changes, events []unix.Kevent_t, timeout *unix.Timespec) (api.Outcome, error) {
	return Invoke(false, "kevent", func() (int, syscall.Errno) {
		n, err := unix.Kevent(kq, changes, events, timeout)
		return clamp(n), errnoOf(err)
	})
}
