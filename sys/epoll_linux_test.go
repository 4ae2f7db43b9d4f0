//go:build linux
// +build linux

package sys_test

import (
	"testing"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-sys/sys"
)

func TestEpollShimRoundtrip(t *testing.T) {
	epfd, err := sys.EpollCreate()
	if err != nil {
		t.Fatalf("epoll_create1: %v", err)
	}
	defer func() { _ = sys.Close(epfd) }()

	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = sys.Close(p[0])
		_ = sys.Close(p[1])
	}()

	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(p[0])}
	if err := sys.EpollCtl(epfd, unix.EPOLL_CTL_ADD, p[0], &ev); err != nil {
		t.Fatalf("epoll_ctl add: %v", err)
	}

	events := make([]unix.EpollEvent, 8)
	o, err := sys.EpollWait(epfd, events, 0)
	if err != nil || o.N != 0 {
		t.Fatalf("idle wait: %+v %v", o, err)
	}

	if o, err := sys.Write(p[1], []byte{1}); err != nil || o.N != 1 {
		t.Fatalf("pipe write: %+v %v", o, err)
	}
	o, err = sys.EpollWait(epfd, events, 1000)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if o.N != 1 || events[0].Fd != int32(p[0]) || events[0].Events&unix.EPOLLIN == 0 {
		t.Fatalf("ready set: %+v events[0]=%+v", o, events[0])
	}

	if err := sys.EpollCtl(epfd, unix.EPOLL_CTL_DEL, p[0], nil); err != nil {
		t.Fatalf("epoll_ctl del: %v", err)
	}
}
