//go:build darwin
// +build darwin

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Darwin has no batched message syscall; the batch is replayed as a
// sendmsg/recvmsg loop with the same counting contract. A partial batch is
// a processed count, never an error; only a stall on the very first
// message surfaces as would-block. An interrupted call retries the current
// message in place so earlier messages are never replayed.

package sys

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

func sysSendMMsg(fd int, hdrs []MMsgHdr, flags int) (int, syscall.Errno) {
	for i := 0; i < len(hdrs); {
		n, _, errno := unix.Syscall(unix.SYS_SENDMSG,
			uintptr(fd),
			uintptr(unsafe.Pointer(&hdrs[i].Hdr)),
			uintptr(flags))
		if errno == errInterrupted {
			continue
		}
		if errno != 0 {
			if i > 0 {
				return i, 0
			}
			return 0, errno
		}
		hdrs[i].Len = uint32(n)
		i++
	}
	return len(hdrs), 0
}

func sysRecvMMsg(fd int, hdrs []MMsgHdr, flags int) (int, syscall.Errno) {
	for i := 0; i < len(hdrs); {
		n, _, errno := unix.Syscall(unix.SYS_RECVMSG,
			uintptr(fd),
			uintptr(unsafe.Pointer(&hdrs[i].Hdr)),
			uintptr(flags))
		if errno == errInterrupted {
			continue
		}
		if errno != 0 {
			if i > 0 {
				return i, 0
			}
			return 0, errno
		}
		hdrs[i].Len = uint32(n)
		i++
	}
	return len(hdrs), 0
}
