//go:build darwin
// +build darwin

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Darwin entry-point alias table. Facilities linux gets from dedicated
// syscalls (accept4) are rebuilt here from the primitives darwin's libc
// exposes, behind the same signatures.

package sys

import (
	"syscall"

	"golang.org/x/sys/unix"
)

const (
	errInterrupted = unix.EINTR
	errInProgress  = unix.EINPROGRESS

	cmsgAlignTo = 4
)

func isWouldBlock(errno syscall.Errno) bool {
	return errno == unix.EAGAIN || errno == unix.EWOULDBLOCK
}

func isUnacceptable(errno syscall.Errno) bool {
	return errno == unix.EBADF || errno == unix.EFAULT
}

func sysSocket(domain, typ, proto int) (int, syscall.Errno) {
	fd, err := unix.Socket(domain, typ, proto)
	if err != nil {
		return 0, errnoOf(err)
	}
	unix.CloseOnExec(fd)
	return fd, 0
}

func sysSocketPair(domain, typ, proto int) ([2]int, syscall.Errno) {
	fds, err := unix.Socketpair(domain, typ, proto)
	if err != nil {
		return [2]int{}, errnoOf(err)
	}
	unix.CloseOnExec(fds[0])
	unix.CloseOnExec(fds[1])
	return fds, 0
}

func sysAccept(fd int) (int, unix.Sockaddr, syscall.Errno) {
	nfd, sa, err := unix.Accept(fd)
	if err != nil {
		return 0, nil, errnoOf(err)
	}
	unix.CloseOnExec(nfd)
	return nfd, sa, 0
}

// postAcceptFixup suppresses SIGPIPE on the new descriptor. Darwin does not
// inherit SO_NOSIGPIPE from the listening socket.
var postAcceptFixup = func(fd int) syscall.Errno {
	return errnoOf(unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_NOSIGPIPE, 1))
}

func sysReadv(fd int, iovs [][]byte) (int, syscall.Errno) {
	n, err := unix.Readv(fd, iovs)
	return clamp(n), errnoOf(err)
}

func sysWritev(fd int, iovs [][]byte) (int, syscall.Errno) {
	n, err := unix.Writev(fd, iovs)
	return clamp(n), errnoOf(err)
}

func sysPreadv(fd int, iovs [][]byte, off int64) (int, syscall.Errno) {
	n, err := unix.Preadv(fd, iovs, off)
	return clamp(n), errnoOf(err)
}

func sysPwritev(fd int, iovs [][]byte, off int64) (int, syscall.Errno) {
	n, err := unix.Pwritev(fd, iovs, off)
	return clamp(n), errnoOf(err)
}

// sysSendfile advances the caller's offset itself: darwin reports the
// transferred byte count through an in/out length, including on the
// would-block path, but leaves the offset argument untouched.
func sysSendfile(dst, src int, off *int64, count int) (int, syscall.Errno) {
	n, err := unix.Sendfile(dst, src, off, count)
	n = clamp(n)
	if n > 0 {
		*off += int64(n)
	}
	return n, errnoOf(err)
}
