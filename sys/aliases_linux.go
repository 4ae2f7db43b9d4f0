//go:build linux
// +build linux

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Linux entry-point alias table. Concrete syscalls, error-code classes and
// layout constants are pinned here at build time so the facade above stays
// platform-free.

package sys

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	errInterrupted = unix.EINTR
	errInProgress  = unix.EINPROGRESS

	// Control-message records are padded to the kernel's long size.
	cmsgAlignTo = int(unsafe.Sizeof(uintptr(0)))
)

func isWouldBlock(errno syscall.Errno) bool {
	return errno == unix.EAGAIN || errno == unix.EWOULDBLOCK
}

func isUnacceptable(errno syscall.Errno) bool {
	return errno == unix.EBADF || errno == unix.EFAULT
}

func sysSocket(domain, typ, proto int) (int, syscall.Errno) {
	fd, err := unix.Socket(domain, typ|unix.SOCK_CLOEXEC, proto)
	if err != nil {
		return 0, errnoOf(err)
	}
	return fd, 0
}

func sysSocketPair(domain, typ, proto int) ([2]int, syscall.Errno) {
	fds, err := unix.Socketpair(domain, typ|unix.SOCK_CLOEXEC, proto)
	if err != nil {
		return [2]int{}, errnoOf(err)
	}
	return fds, 0
}

// sysAccept picks up close-on-exec atomically; no post-accept signal fixup
// is needed because linux suppresses SIGPIPE per send via MSG_NOSIGNAL.
func sysAccept(fd int) (int, unix.Sockaddr, syscall.Errno) {
	nfd, sa, err := unix.Accept4(fd, unix.SOCK_CLOEXEC)
	if err != nil {
		return 0, nil, errnoOf(err)
	}
	return nfd, sa, 0
}

var postAcceptFixup = func(fd int) syscall.Errno {
	return 0
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

// sysSendfile reports transferred bytes through the kernel-advanced offset;
// a would-block return after partial progress keeps that count.
func sysSendfile(dst, src int, off *int64, count int) (int, syscall.Errno) {
	n, err := unix.Sendfile(dst, src, off, count)
	return clamp(n), errnoOf(err)
}
