//go:build linux || darwin
// +build linux darwin

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Ancillary-data view: forward-only traversal over the chain of
// control-message records inside one message's out-of-band buffer, plus the
// size calculators callers use when sizing outgoing buffers. The header
// macros behind these exist on some platforms only as preprocessor
// constructs; here they are ordinary addressable functions over explicit
// byte slices.

package sys

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Cmsg is a view of one control-message record: level, type and the
// record's declared total length, anchored at its offset in the buffer.
type Cmsg struct {
	Level int32
	Type  int32
	Len   int

	off int
}

// FirstCmsg returns the record at the buffer start, or false when the
// buffer cannot hold a minimal header.
func FirstCmsg(oob []byte) (Cmsg, bool) {
	return cmsgAt(oob, 0)
}

// NextCmsg advances past prev using its declared length, or returns false
// once the remaining space cannot hold another header. A declared length
// shorter than the header itself advances by one header so malformed input
// cannot stall the traversal.
func NextCmsg(oob []byte, prev Cmsg) (Cmsg, bool) {
	step := prev.Len
	if step < unix.SizeofCmsghdr {
		step = unix.SizeofCmsghdr
	}
	return cmsgAt(oob, prev.off+cmsgAlign(step))
}

// CmsgPayload returns the record's payload: declared length minus the
// fixed header size, clamped so a malformed header can neither underflow
// nor run past the buffer.
func CmsgPayload(oob []byte, c Cmsg) []byte {
	start := c.off + unix.CmsgLen(0)
	n := c.Len - unix.CmsgLen(0)
	if n < 0 {
		n = 0
	}
	if start > len(oob) {
		return nil
	}
	if start+n > len(oob) {
		n = len(oob) - start
	}
	return oob[start : start+n]
}

// PutCmsg writes one record at the buffer start and reports the space it
// occupies, or zero when the buffer is too small. Chained records are
// written back-to-back by re-slicing past the returned count.
func PutCmsg(oob []byte, level, typ int32, data []byte) int {
	space := unix.CmsgSpace(len(data))
	if len(oob) < space {
		return 0
	}
	h := (*unix.Cmsghdr)(unsafe.Pointer(&oob[0]))
	h.Level = level
	h.Type = typ
	h.SetLen(unix.CmsgLen(len(data)))
	copy(oob[unix.CmsgLen(0):], data)
	return space
}

// CmsgSpace reports the buffer space one record with a payload of n bytes
// occupies, padding included.
func CmsgSpace(n int) int {
	return unix.CmsgSpace(n)
}

// CmsgLen reports the value to store in a record's length field for a
// payload of n bytes.
func CmsgLen(n int) int {
	return unix.CmsgLen(n)
}

func cmsgAt(oob []byte, off int) (Cmsg, bool) {
	if off < 0 || len(oob)-off < unix.SizeofCmsghdr {
		return Cmsg{}, false
	}
	h := (*unix.Cmsghdr)(unsafe.Pointer(&oob[off]))
	return Cmsg{Level: h.Level, Type: h.Type, Len: int(h.Len), off: off}, true
}

func cmsgAlign(n int) int {
	return (n + cmsgAlignTo - 1) &^ (cmsgAlignTo - 1)
}
