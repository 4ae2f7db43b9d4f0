//go:build linux
// +build linux

package sys_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-sys/sys"
)

func TestSendfileAdvancesOffset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload")
	src, err := sys.Open(path, unix.O_RDWR|unix.O_CREAT, 0o600)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = sys.Close(src) }()

	content := bytes.Repeat([]byte("zero-copy "), 100)
	if o, err := sys.Pwrite(src, content, 0); err != nil || o.N != len(content) {
		t.Fatalf("pwrite: %+v %v", o, err)
	}

	a, b := streamPair(t)
	var off int64
	o, err := sys.Sendfile(a, src, &off, len(content))
	if err != nil {
		t.Fatalf("sendfile: %v", err)
	}
	if !o.Completed() {
		// A stalled transfer must still account for what went out.
		if off != int64(o.N) {
			t.Fatalf("would-block progress %d disagrees with offset %d", o.N, off)
		}
		t.Skipf("socket buffer filled after %d bytes", o.N)
	}
	if o.N != len(content) || off != int64(len(content)) {
		t.Fatalf("sendfile moved %d bytes, offset %d", o.N, off)
	}

	got := make([]byte, len(content))
	total := 0
	for total < len(content) {
		ro, err := sys.Read(b, got[total:])
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if ro.N == 0 {
			break
		}
		total += ro.N
	}
	if !bytes.Equal(got[:total], content) {
		t.Fatal("transferred bytes corrupted")
	}
}
