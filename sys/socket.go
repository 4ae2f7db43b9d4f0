//go:build linux || darwin
// +build linux darwin

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Descriptor lifecycle facade: creation, binding, connection setup and
// teardown. One OS call per function; ownership of every descriptor stays
// with the caller.

package sys

import (
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-sys/api"
)

// Socket creates a socket descriptor with close-on-exec applied.
func Socket(domain, typ, proto int) (int, error) {
	o, err := Invoke(false, "socket", func() (int, syscall.Errno) {
		return sysSocket(domain, typ, proto)
	})
	return o.N, err
}

// SocketPair creates a connected descriptor pair.
func SocketPair(domain, typ, proto int) ([2]int, error) {
	return InvokeValue("socketpair", func() ([2]int, syscall.Errno) {
		return sysSocketPair(domain, typ, proto)
	})
}

// Open opens a file and returns its descriptor.
func Open(path string, flags int, mode uint32) (int, error) {
	o, err := Invoke(false, "open", func() (int, syscall.Errno) {
		fd, e := unix.Open(path, flags|unix.O_CLOEXEC, mode)
		return clamp(fd), errnoOf(e)
	})
	return o.N, err
}

// Dup duplicates a descriptor.
func Dup(fd int) (int, error) {
	o, err := Invoke(false, "dup", func() (int, syscall.Errno) {
		nfd, e := unix.Dup(fd)
		return clamp(nfd), errnoOf(e)
	})
	return o.N, err
}

// sysClose issues the raw close; replaceable in tests.
var sysClose = func(fd int) syscall.Errno {
	return errnoOf(unix.Close(fd))
}

// Close releases a descriptor. An interrupted close counts as success: the
// descriptor state after EINTR is unspecified and a retry could close an
// unrelated, freshly reused descriptor. This rule is scoped to Close only.
func Close(fd int) error {
	errno := sysClose(fd)
	if errno == 0 || errno == errInterrupted {
		return nil
	}
	if isUnacceptable(errno) {
		panic(&api.Fault{Errno: errno, Op: "close"})
	}
	return &api.OsError{Errno: errno, Op: "close"}
}

// Bind assigns a local address to fd.
func Bind(fd int, sa unix.Sockaddr) error {
	_, err := Invoke(false, "bind", func() (int, syscall.Errno) {
		return 0, errnoOf(unix.Bind(fd, sa))
	})
	return err
}

// Listen marks fd as a passive socket.
func Listen(fd, backlog int) error {
	_, err := Invoke(false, "listen", func() (int, syscall.Errno) {
		return 0, errnoOf(unix.Listen(fd, backlog))
	})
	return err
}

// Connect starts a connection. It reports true when the connection
// completed synchronously and false when it is now pending and the caller
// should await write-readiness; pending is control flow, not failure. An
// interrupted connect also completes asynchronously, so it folds into the
// pending return rather than being retried.
func Connect(fd int, sa unix.Sockaddr) (bool, error) {
	errno := errnoOf(unix.Connect(fd, sa))
	switch {
	case errno == 0:
		return true, nil
	case errno == errInProgress || errno == errInterrupted:
		return false, nil
	case isUnacceptable(errno):
		panic(&api.Fault{Errno: errno, Op: "connect"})
	}
	return false, &api.OsError{Errno: errno, Op: "connect"}
}

// Accept takes one pending connection. The outcome value is the new
// descriptor. Where the host needs a post-accept signal fixup and that
// fixup fails, the new descriptor is closed, the listening descriptor is
// left untouched, and the fixup failure is what propagates; the accept is
// not retried.
func Accept(fd int) (api.Outcome, unix.Sockaddr, error) {
	var sa unix.Sockaddr
	o, err := Invoke(true, "accept", func() (int, syscall.Errno) {
		nfd, from, errno := sysAccept(fd)
		sa = from
		return nfd, errno
	})
	if err != nil || !o.Completed() {
		return o, nil, err
	}
	if errno := postAcceptFixup(o.N); errno != 0 {
		_ = sysClose(o.N)
		return api.Outcome{}, nil, &api.OsError{Errno: errno, Op: "accept-setsockopt"}
	}
	return o, sa, nil
}

// Shutdown half- or fully closes a connection.
func Shutdown(fd, how int) error {
	_, err := Invoke(false, "shutdown", func() (int, syscall.Errno) {
		return 0, errnoOf(unix.Shutdown(fd, how))
	})
	return err
}
