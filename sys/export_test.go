//go:build linux || darwin
// +build linux darwin

// Package sys
// Author: momentics <momentics@gmail.com>

package sys

import "syscall"

// SwapClose replaces the raw close entry point and returns a restore func.
func SwapClose(fn func(fd int) syscall.Errno) func() {
	old := sysClose
	sysClose = fn
	return func() { sysClose = old }
}

// SwapAcceptFixup replaces the post-accept fixup and returns a restore func.
func SwapAcceptFixup(fn func(fd int) syscall.Errno) func() {
	old := postAcceptFixup
	postAcceptFixup = fn
	return func() { postAcceptFixup = old }
}
