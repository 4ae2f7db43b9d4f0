//go:build linux || darwin
// +build linux darwin

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Transfer facade: scalar, positioned, vectored and message-based I/O plus
// zero-copy file-to-socket transfer. Every operation here is
// blocking-capable; on a non-blocking descriptor it surfaces
// api.WouldBlock instead of suspending.

package sys

import (
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-sys/api"
)

// Read reads into p.
func Read(fd int, p []byte) (api.Outcome, error) {
	return Invoke(true, "read", func() (int, syscall.Errno) {
		n, err := unix.Read(fd, p)
		return clamp(n), errnoOf(err)
	})
}

// Write writes p.
func Write(fd int, p []byte) (api.Outcome, error) {
	return Invoke(true, "write", func() (int, syscall.Errno) {
		n, err := unix.Write(fd, p)
		return clamp(n), errnoOf(err)
	})
}

// Pread reads into p at the given file offset without moving the cursor.
func Pread(fd int, p []byte, off int64) (api.Outcome, error) {
	return Invoke(true, "pread", func() (int, syscall.Errno) {
		n, err := unix.Pread(fd, p, off)
		return clamp(n), errnoOf(err)
	})
}

// Pwrite writes p at the given file offset without moving the cursor.
func Pwrite(fd int, p []byte, off int64) (api.Outcome, error) {
	return Invoke(true, "pwrite", func() (int, syscall.Errno) {
		n, err := unix.Pwrite(fd, p, off)
		return clamp(n), errnoOf(err)
	})
}

// capVector trims an iovec list to the kernel's per-call limit; anything past
// MaxVector would draw EINVAL from the vectored syscalls.
func capVector(iovs [][]byte) [][]byte {
	if len(iovs) > MaxVector {
		return iovs[:MaxVector]
	}
	return iovs
}

// Readv gathers into iovs in order. At most MaxVector buffers take part in
// one call; the partial count tells the caller how far the transfer got.
func Readv(fd int, iovs [][]byte) (api.Outcome, error) {
	iovs = capVector(iovs)
	return Invoke(true, "readv", func() (int, syscall.Errno) {
		return sysReadv(fd, iovs)
	})
}

// Writev scatters iovs in order, bounded to MaxVector buffers per call.
func Writev(fd int, iovs [][]byte) (api.Outcome, error) {
	iovs = capVector(iovs)
	return Invoke(true, "writev", func() (int, syscall.Errno) {
		return sysWritev(fd, iovs)
	})
}

// Preadv is the positioned form of Readv.
func Preadv(fd int, iovs [][]byte, off int64) (api.Outcome, error) {
	iovs = capVector(iovs)
	return Invoke(true, "preadv", func() (int, syscall.Errno) {
		return sysPreadv(fd, iovs, off)
	})
}

// Pwritev is the positioned form of Writev.
func Pwritev(fd int, iovs [][]byte, off int64) (api.Outcome, error) {
	iovs = capVector(iovs)
	return Invoke(true, "pwritev", func() (int, syscall.Errno) {
		return sysPwritev(fd, iovs, off)
	})
}

// Recvmsg receives one message with ancillary data into oob. Besides the
// outcome it reports the ancillary byte count, the message flags and the
// source address.
func Recvmsg(fd int, p, oob []byte, flags int) (o api.Outcome, oobn int, recvflags int, from unix.Sockaddr, err error) {
	o, err = Invoke(true, "recvmsg", func() (int, syscall.Errno) {
		n, on, rf, sa, e := unix.Recvmsg(fd, p, oob, flags)
		oobn, recvflags, from = on, rf, sa
		return clamp(n), errnoOf(e)
	})
	return o, oobn, recvflags, from, err
}

// Sendmsg sends one message with ancillary data from oob. to may be nil on
// a connected socket.
func Sendmsg(fd int, p, oob []byte, to unix.Sockaddr, flags int) (api.Outcome, error) {
	return Invoke(true, "sendmsg", func() (int, syscall.Errno) {
		n, err := unix.SendmsgN(fd, p, oob, to, flags)
		return clamp(n), errnoOf(err)
	})
}

// Sendfile moves up to count bytes from src at *off to dst without copying
// through user space, advancing *off by the transferred amount. The OS can
// complete part of the transfer before signalling would-block, so the
// would-block outcome carries that partial count: callers resume at the
// advanced offset instead of re-sending bytes already on the wire.
func Sendfile(dst, src int, off *int64, count int) (api.Outcome, error) {
	return Invoke(true, "sendfile", func() (int, syscall.Errno) {
		return sysSendfile(dst, src, off, count)
	})
}

// Fstat queries descriptor metadata.
func Fstat(fd int, st *unix.Stat_t) error {
	_, err := Invoke(false, "fstat", func() (int, syscall.Errno) {
		return 0, errnoOf(unix.Fstat(fd, st))
	})
	return err
}
