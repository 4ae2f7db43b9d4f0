//go:build linux
// +build linux

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Linux kernel event-queue shim. Registration semantics and dispatch
// belong to the reactor; this only executes the raw calls through the
// invocation core.

package sys

import (
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-sys/api"
)

// EpollCreate opens a kernel event queue and returns its descriptor.
func EpollCreate() (int, error) {
	o, err := Invoke(false, "epoll_create1", func() (int, syscall.Errno) {
		epfd, e := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
		return clamp(epfd), errnoOf(e)
	})
	return o.N, err
}

// EpollCtl adds, modifies or removes one descriptor's registration.
func EpollCtl(epfd, op, fd int, ev *unix.EpollEvent) error {
	_, err := Invoke(false, "epoll_ctl", func() (int, syscall.Errno) {
		return 0, errnoOf(unix.EpollCtl(epfd, op, fd, ev))
	})
	return err
}

// EpollWait fills events with ready registrations, waiting up to
// timeoutMs; the outcome value is the event count.
func EpollWait(epfd int, events []unix.EpollEvent, timeoutMs int) (api.Outcome, error) {
	return Invoke(false, "epoll_wait", func() (int, syscall.Errno) {
		n, err := unix.EpollWait(epfd, events, timeoutMs)
		return clamp(n), errnoOf(err)
	})
}
