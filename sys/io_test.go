//go:build linux || darwin
// +build linux darwin

package sys_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-sys/sys"
)

func TestPositionedFileIO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch")
	fd, err := sys.Open(path, unix.O_RDWR|unix.O_CREAT, 0o600)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = sys.Close(fd) }()

	payload := []byte("positioned transfer")
	o, err := sys.Pwrite(fd, payload, 128)
	if err != nil || o.N != len(payload) {
		t.Fatalf("pwrite: %+v %v", o, err)
	}

	back := make([]byte, len(payload))
	o, err = sys.Pread(fd, back, 128)
	if err != nil || o.N != len(payload) {
		t.Fatalf("pread: %+v %v", o, err)
	}
	if !bytes.Equal(back, payload) {
		t.Fatalf("pread got %q", back)
	}

	var st unix.Stat_t
	if err := sys.Fstat(fd, &st); err != nil {
		t.Fatalf("fstat: %v", err)
	}
	if st.Size != 128+int64(len(payload)) {
		t.Fatalf("size = %d", st.Size)
	}
}

func TestVectoredTransfer(t *testing.T) {
	a, b := streamPair(t)

	parts := [][]byte{[]byte("scatter"), []byte("-"), []byte("gather")}
	want := []byte("scatter-gather")
	o, err := sys.Writev(a, parts)
	if err != nil || o.N != len(want) {
		t.Fatalf("writev: %+v %v", o, err)
	}

	first := make([]byte, 7)
	rest := make([]byte, 32)
	o, err = sys.Readv(b, [][]byte{first, rest})
	if err != nil {
		t.Fatalf("readv: %v", err)
	}
	got := append(append([]byte{}, first...), rest...)[:o.N]
	if !bytes.Equal(got, want) {
		t.Fatalf("readv got %q", got)
	}
}

func TestVectoredCapsAtMaxVector(t *testing.T) {
	a, b := streamPair(t)

	// One byte per buffer: the transferred count exposes how many buffers
	// actually reached the kernel.
	iovs := make([][]byte, sys.MaxVector+6)
	for i := range iovs {
		iovs[i] = []byte{'v'}
	}
	o, err := sys.Writev(a, iovs)
	if err != nil {
		t.Fatalf("writev: %v", err)
	}
	if o.N != sys.MaxVector {
		t.Fatalf("writev moved %d bytes, want the %d-buffer cap", o.N, sys.MaxVector)
	}

	drain := make([]byte, sys.MaxVector)
	o, err = sys.Read(b, drain)
	if err != nil || o.N != sys.MaxVector {
		t.Fatalf("drain: %+v %v", o, err)
	}
}

func TestSendRecvmsgWithAncillaryData(t *testing.T) {
	a, b := streamPair(t)

	// Pass a duplicated descriptor as the ancillary record.
	payload := []byte("fd follows")
	oob := unix.UnixRights(int(1)) // stdout, harmless to duplicate
	o, err := sys.Sendmsg(a, payload, oob, nil, 0)
	if err != nil || o.N != len(payload) {
		t.Fatalf("sendmsg: %+v %v", o, err)
	}

	buf := make([]byte, 64)
	oobBuf := make([]byte, sys.CmsgSpace(4))
	o, oobn, _, _, err := sys.Recvmsg(b, buf, oobBuf, 0)
	if err != nil || o.N != len(payload) {
		t.Fatalf("recvmsg: %+v %v", o, err)
	}
	if oobn == 0 {
		t.Fatal("ancillary data lost")
	}

	c, ok := sys.FirstCmsg(oobBuf[:oobn])
	if !ok {
		t.Fatal("no control record in received buffer")
	}
	if c.Level != unix.SOL_SOCKET || c.Type != unix.SCM_RIGHTS {
		t.Fatalf("record = level %d type %d", c.Level, c.Type)
	}
	passed := sys.CmsgPayload(oobBuf[:oobn], c)
	if len(passed) != 4 {
		t.Fatalf("descriptor payload length = %d", len(passed))
	}
	// Close the duplicated descriptor delivered by the kernel.
	rfd := int(int32(passed[0]) | int32(passed[1])<<8 | int32(passed[2])<<16 | int32(passed[3])<<24)
	if rfd > 0 {
		_ = sys.Close(rfd)
	}
	if _, ok := sys.NextCmsg(oobBuf[:oobn], c); ok {
		t.Error("exactly one record was sent")
	}
}
