//go:build linux || darwin
// +build linux darwin

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Descriptor configuration: status-flag access and the non-blocking-mode
// toggle, including the workaround for the documented-versus-observed
// mismatch where the flag write fails with an invalid-argument code.

package sys

import (
	"errors"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-sys/api"
)

// GetFlags reads the descriptor status flags.
func GetFlags(fd int) (int, error) {
	o, err := Invoke(false, "fcntl-getfl", func() (int, syscall.Errno) {
		flags, e := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
		return clamp(flags), errnoOf(e)
	})
	return o.N, err
}

// SetFlags writes the descriptor status flags.
func SetFlags(fd, flags int) error {
	_, err := Invoke(false, "fcntl-setfl", func() (int, syscall.Errno) {
		_, e := unix.FcntlInt(uintptr(fd), unix.F_SETFL, flags)
		return 0, errnoOf(e)
	})
	return err
}

// SetNonblock puts fd into non-blocking mode: read the current flags, set
// the non-blocking bit, write back. Idempotent. The flag write has been
// observed to fail with the invalid-argument code on one platform despite
// documented guarantees; that case surfaces as api.ErrNonblockFailed so
// callers can special-case the known defect.
func SetNonblock(fd int) error {
	flags, err := GetFlags(fd)
	if err != nil {
		return err
	}
	if err := SetFlags(fd, flags|unix.O_NONBLOCK); err != nil {
		if errors.Is(err, unix.EINVAL) {
			return api.ErrNonblockFailed
		}
		return err
	}
	return nil
}

// IsNonblock reports whether fd currently has the non-blocking bit set.
func IsNonblock(fd int) (bool, error) {
	flags, err := GetFlags(fd)
	if err != nil {
		return false, err
	}
	return flags&unix.O_NONBLOCK != 0, nil
}
