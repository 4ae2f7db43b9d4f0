//go:build linux || darwin
// +build linux darwin

// Package sys
// Author: momentics <momentics@gmail.com>
//
// Addressing facade: endpoint queries, text/binary address conversion and
// network-interface metadata. Conversion goes through the value-sentinel
// core: these primitives fail by producing nothing, not by a negative
// count.

package sys

import (
	"net"
	"net/netip"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-sys/api"
)

// Getsockname reports the local address bound to fd.
func Getsockname(fd int) (unix.Sockaddr, error) {
	return InvokeValue("getsockname", func() (unix.Sockaddr, syscall.Errno) {
		sa, err := unix.Getsockname(fd)
		return sa, errnoOf(err)
	})
}

// Getpeername reports the remote address connected to fd.
func Getpeername(fd int) (unix.Sockaddr, error) {
	return InvokeValue("getpeername", func() (unix.Sockaddr, syscall.Errno) {
		sa, err := unix.Getpeername(fd)
		return sa, errnoOf(err)
	})
}

// SockaddrText renders a binary socket address as text. Unknown address
// families produce the address-family-not-supported code.
func SockaddrText(sa unix.Sockaddr) (string, error) {
	return InvokeValue("ntop", func() (string, syscall.Errno) {
		switch a := sa.(type) {
		case *unix.SockaddrInet4:
			return netip.AddrFrom4(a.Addr).String(), 0
		case *unix.SockaddrInet6:
			return netip.AddrFrom16(a.Addr).String(), 0
		case *unix.SockaddrUnix:
			return a.Name, 0
		}
		return "", unix.EAFNOSUPPORT
	})
}

// ParseAddr converts a textual IP address plus port into a socket address.
func ParseAddr(text string, port int) (unix.Sockaddr, error) {
	return InvokeValue("pton", func() (unix.Sockaddr, syscall.Errno) {
		a, err := netip.ParseAddr(text)
		if err != nil {
			return nil, unix.EINVAL
		}
		if a.Is4() || a.Is4In6() {
			return &unix.SockaddrInet4{Port: port, Addr: a.Unmap().As4()}, 0
		}
		return &unix.SockaddrInet6{Port: port, Addr: a.As16()}, 0
	})
}

// Interfaces enumerates the host's network interfaces.
func Interfaces() ([]net.Interface, error) {
	return net.Interfaces()
}

// InterfaceIndex resolves an interface name to its index.
func InterfaceIndex(name string) (int, error) {
	ifi, err := net.InterfaceByName(name)
	if err != nil {
		return 0, &api.OsError{Errno: unix.ENODEV, Op: "if_nametoindex"}
	}
	return ifi.Index, nil
}
