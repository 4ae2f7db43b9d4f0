//go:build linux || darwin
// +build linux darwin

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Batched multi-message transfer: several independent messages moved by
// one invocation to amortize per-call overhead. The header layout is
// normalized to one shape here; how the batch actually reaches the kernel
// differs per platform and lives in the alias files.

package sys

import (
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-sys/api"
)

// MaxBatch bounds how many messages one batched call may carry.
const MaxBatch = 32

// MaxVector bounds the iovec count of a single vectored call.
const MaxVector = 1024

// MMsgHdr pairs one message header with the byte count the kernel
// transferred for it. The layout matches the linux mmsghdr ABI; darwin
// never hands this struct to the kernel, so the shared shape is safe.
type MMsgHdr struct {
	Hdr unix.Msghdr
	Len uint32
	_   [4]byte
}

// PackMMsgHdr fills h with a single-buffer message. iov is the backing
// iovec and must stay alive until the batched call returns.
func PackMMsgHdr(h *MMsgHdr, iov *unix.Iovec, p []byte) {
	if len(p) > 0 {
		iov.Base = &p[0]
	}
	iov.SetLen(len(p))
	h.Hdr = unix.Msghdr{}
	h.Hdr.Iov = iov
	h.Hdr.SetIovlen(1)
	h.Len = 0
}

// SendMMsg transmits up to MaxBatch messages from hdrs in one batched
// call. The outcome value is the number of messages fully handed to the
// kernel, each header's Len updated to its transferred byte count;
// would-block with zero means not even the first message could go out.
func SendMMsg(fd int, hdrs []MMsgHdr, flags int) (api.Outcome, error) {
	if len(hdrs) > MaxBatch {
		hdrs = hdrs[:MaxBatch]
	}
	return Invoke(true, "sendmmsg", func() (int, syscall.Errno) {
		return sysSendMMsg(fd, hdrs, flags)
	})
}

// RecvMMsg receives up to MaxBatch messages into hdrs in one batched call,
// with the same counting contract as SendMMsg.
func RecvMMsg(fd int, hdrs []MMsgHdr, flags int) (api.Outcome, error) {
	if len(hdrs) > MaxBatch {
		hdrs = hdrs[:MaxBatch]
	}
	return Invoke(true, "recvmmsg", func() (int, syscall.Errno) {
		return sysRecvMMsg(fd, hdrs, flags)
	})
}
