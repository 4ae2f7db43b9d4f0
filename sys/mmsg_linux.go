//go:build linux
// +build linux

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Linux batched transfer over the native sendmmsg/recvmmsg syscalls.

package sys

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

func sysSendMMsg(fd int, hdrs []MMsgHdr, flags int) (int, syscall.Errno) {
	if len(hdrs) == 0 {
		return 0, 0
	}
	n, _, errno := unix.Syscall6(unix.SYS_SENDMMSG,
		uintptr(fd),
		uintptr(unsafe.Pointer(&hdrs[0])),
		uintptr(len(hdrs)),
		uintptr(flags), 0, 0)
	if errno != 0 {
		return 0, errno
	}
	return int(n), 0
}

func sysRecvMMsg(fd int, hdrs []MMsgHdr, flags int) (int, syscall.Errno) {
	if len(hdrs) == 0 {
		return 0, 0
	}
	n, _, errno := unix.Syscall6(unix.SYS_RECVMMSG,
		uintptr(fd),
		uintptr(unsafe.Pointer(&hdrs[0])),
		uintptr(len(hdrs)),
		uintptr(flags),
		0, // no receive timeout; readiness is the caller's concern
		0)
	if errno != 0 {
		return 0, errno
	}
	return int(n), 0
}
