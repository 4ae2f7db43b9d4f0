//go:build windows
// +build windows

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Winsock facade. Same call surface and outcome semantics as the POSIX
// side, over socket handles. Batched multi-message transfer has no winsock
// primitive and reports the dedicated not-supported sentinel.

package sys

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/momentics/hioload-sys/api"
)

// Socket creates a socket handle.
func Socket(domain, typ, proto int) (windows.Handle, error) {
	return InvokeValue("socket", func() (windows.Handle, syscall.Errno) {
		h, err := windows.Socket(domain, typ, proto)
		return h, errnoOf(err)
	})
}

// Close releases a socket handle. An interrupted close counts as success,
// matching the POSIX-side rule.
func Close(h windows.Handle) error {
	errno := errnoOf(windows.Closesocket(h))
	if errno == 0 || errno == errInterrupted {
		return nil
	}
	if isUnacceptable(errno) {
		panic(&api.Fault{Errno: errno, Op: "closesocket"})
	}
	return &api.OsError{Errno: errno, Op: "closesocket"}
}

// Bind assigns a local address to h.
func Bind(h windows.Handle, sa windows.Sockaddr) error {
	_, err := Invoke(false, "bind", func() (int, syscall.Errno) {
		return 0, errnoOf(windows.Bind(h, sa))
	})
	return err
}

// Listen marks h as a passive socket.
func Listen(h windows.Handle, backlog int) error {
	_, err := Invoke(false, "listen", func() (int, syscall.Errno) {
		return 0, errnoOf(windows.Listen(h, backlog))
	})
	return err
}

// Connect starts a connection; true means it completed synchronously,
// false means it is pending and the caller should await write-readiness.
func Connect(h windows.Handle, sa windows.Sockaddr) (bool, error) {
	errno := errnoOf(windows.Connect(h, sa))
	switch {
	case errno == 0:
		return true, nil
	case errno == errInProgress || errno == windows.WSAEINPROGRESS || errno == errInterrupted:
		return false, nil
	case isUnacceptable(errno):
		panic(&api.Fault{Errno: errno, Op: "connect"})
	}
	return false, &api.OsError{Errno: errno, Op: "connect"}
}

// Accept takes one pending connection; the outcome value is the raw new
// handle, returned alongside in typed form. Accepted handles inherit the
// listening socket's attributes, so no post-accept fixup applies.
func Accept(h windows.Handle) (api.Outcome, windows.Handle, error) {
	var nh windows.Handle
	o, err := Invoke(true, "accept", func() (int, syscall.Errno) {
		conn, errno := sysAccept(h)
		if errno != 0 {
			return 0, errno
		}
		nh = conn
		return int(conn), 0
	})
	if err != nil || !o.Completed() {
		return o, windows.InvalidHandle, err
	}
	return o, nh, nil
}

// Shutdown half- or fully closes a connection.
func Shutdown(h windows.Handle, how int) error {
	_, err := Invoke(false, "shutdown", func() (int, syscall.Errno) {
		return 0, errnoOf(windows.Shutdown(h, how))
	})
	return err
}

// Read receives into p.
func Read(h windows.Handle, p []byte) (api.Outcome, error) {
	bufs := wsaBufs([][]byte{p})
	return recvBufs(h, bufs, "wsarecv")
}

// Write sends p.
func Write(h windows.Handle, p []byte) (api.Outcome, error) {
	bufs := wsaBufs([][]byte{p})
	return sendBufs(h, bufs, "wsasend")
}

// Readv gathers into iovs in order.
func Readv(h windows.Handle, iovs [][]byte) (api.Outcome, error) {
	return recvBufs(h, wsaBufs(iovs), "wsarecv")
}

// Writev scatters iovs in order.
func Writev(h windows.Handle, iovs [][]byte) (api.Outcome, error) {
	return sendBufs(h, wsaBufs(iovs), "wsasend")
}

// MMsgHdr mirrors the POSIX-side batch header shape so cross-platform
// callers compile; winsock has no batched message primitive.
type MMsgHdr struct {
	Len uint32
}

// SendMMsg reports the missing winsock batch primitive.
func SendMMsg(windows.Handle, []MMsgHdr, int) (api.Outcome, error) {
	return api.Outcome{}, api.ErrBatchNotSupported
}

// RecvMMsg reports the missing winsock batch primitive.
func RecvMMsg(windows.Handle, []MMsgHdr, int) (api.Outcome, error) {
	return api.Outcome{}, api.ErrBatchNotSupported
}

// Getsockname reports the local address bound to h.
func Getsockname(h windows.Handle) (windows.Sockaddr, error) {
	return InvokeValue("getsockname", func() (windows.Sockaddr, syscall.Errno) {
		sa, err := windows.Getsockname(h)
		return sa, errnoOf(err)
	})
}

// Getpeername reports the remote address connected to h.
func Getpeername(h windows.Handle) (windows.Sockaddr, error) {
	return InvokeValue("getpeername", func() (windows.Sockaddr, syscall.Errno) {
		sa, err := windows.Getpeername(h)
		return sa, errnoOf(err)
	})
}

// SetNonblock toggles FIONBIO. The invalid-argument defect surfaces as the
// same named sentinel as on the POSIX side.
func SetNonblock(h windows.Handle) error {
	_, err := Invoke(false, "ioctlsocket", func() (int, syscall.Errno) {
		return 0, sysIoctlNonblock(h, true)
	})
	if err != nil && errors.Is(err, windows.WSAEINVAL) {
		return api.ErrNonblockFailed
	}
	return err
}

// Poll waits up to timeoutMs for readiness on fds via WSAPoll.
func Poll(fds []PollFd, timeoutMs int) (api.Outcome, error) {
	return Invoke(false, "wsapoll", func() (int, syscall.Errno) {
		return sysPoll(fds, timeoutMs)
	})
}

func wsaBufs(iovs [][]byte) []windows.WSABuf {
	bufs := make([]windows.WSABuf, 0, len(iovs))
	for _, p := range iovs {
		b := windows.WSABuf{Len: uint32(len(p))}
		if len(p) > 0 {
			b.Buf = &p[0]
		}
		bufs = append(bufs, b)
	}
	return bufs
}

func recvBufs(h windows.Handle, bufs []windows.WSABuf, op string) (api.Outcome, error) {
	return Invoke(true, op, func() (int, syscall.Errno) {
		var done, flags uint32
		err := windows.WSARecv(h, &bufs[0], uint32(len(bufs)), &done, &flags, nil, nil)
		return int(done), errnoOf(err)
	})
}

func sendBufs(h windows.Handle, bufs []windows.WSABuf, op string) (api.Outcome, error) {
	return Invoke(true, op, func() (int, syscall.Errno) {
		var done uint32
		err := windows.WSASend(h, &bufs[0], uint32(len(bufs)), &done, 0, nil, nil)
		return int(done), errnoOf(err)
	})
}
