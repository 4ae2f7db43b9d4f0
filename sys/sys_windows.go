//go:build windows
// +build windows

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Winsock alias table. Error-code classes map onto the WSA code space, and
// the entry points x/sys/windows does not surface (plain accept,
// ioctlsocket, WSAPoll) are bound from ws2_32 directly.

package sys

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	errInterrupted = windows.WSAEINTR
	// Winsock reports a pending non-blocking connect with the
	// would-block code rather than a dedicated in-progress one.
	errInProgress = windows.WSAEWOULDBLOCK

	fionbio = 0x8004667e
)

var (
	modws2_32       = windows.NewLazySystemDLL("ws2_32.dll")
	procaccept      = modws2_32.NewProc("accept")
	procioctlsocket = modws2_32.NewProc("ioctlsocket")
	procWSAPoll     = modws2_32.NewProc("WSAPoll")
)

func isWouldBlock(errno syscall.Errno) bool {
	return errno == windows.WSAEWOULDBLOCK
}

func isUnacceptable(errno syscall.Errno) bool {
	return errno == windows.WSAENOTSOCK || errno == windows.WSAEFAULT
}

// PollFd mirrors WSAPOLLFD.
type PollFd struct {
	Fd      windows.Handle
	Events  int16
	Revents int16
}

func sysAccept(s windows.Handle) (windows.Handle, syscall.Errno) {
	var rsa windows.RawSockaddrAny
	l := int32(unsafe.Sizeof(rsa))
	r1, _, e1 := procaccept.Call(
		uintptr(s),
		uintptr(unsafe.Pointer(&rsa)),
		uintptr(unsafe.Pointer(&l)))
	h := windows.Handle(r1)
	if h == windows.InvalidHandle {
		return windows.InvalidHandle, errnoOf(e1)
	}
	return h, 0
}

func sysIoctlNonblock(s windows.Handle, on bool) syscall.Errno {
	mode := uint32(0)
	if on {
		mode = 1
	}
	r1, _, e1 := procioctlsocket.Call(
		uintptr(s),
		uintptr(fionbio),
		uintptr(unsafe.Pointer(&mode)))
	if r1 != 0 {
		return errnoOf(e1)
	}
	return 0
}

func sysPoll(fds []PollFd, timeoutMs int) (int, syscall.Errno) {
	if len(fds) == 0 {
		return 0, 0
	}
	r1, _, e1 := procWSAPoll.Call(
		uintptr(unsafe.Pointer(&fds[0])),
		uintptr(len(fds)),
		uintptr(timeoutMs))
	n := int(int32(r1))
	if n < 0 {
		return 0, errnoOf(e1)
	}
	return n, 0
}
