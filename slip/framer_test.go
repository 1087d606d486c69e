package slip

import (
	"bytes"
	"testing"
)

func TestFramerSingleFrame(t *testing.T) {
	f := NewFramer()
	datagram := []byte("/ping")
	out := f.PushBytes(Encode(datagram))
	if len(out) != 1 {
		t.Fatalf("expected 1 datagram, got %d", len(out))
	}
	if !bytes.Equal(out[0], datagram) {
		t.Fatalf("datagram = %v, want %v", out[0], datagram)
	}
}

func TestFramerAcrossPushes(t *testing.T) {
	f := NewFramer()
	encoded := Encode([]byte("hello world"))
	mid := len(encoded) / 2

	if out := f.PushBytes(encoded[:mid]); len(out) != 0 {
		t.Fatalf("expected no datagrams before END arrives, got %d", len(out))
	}
	out := f.PushBytes(encoded[mid:])
	if len(out) != 1 {
		t.Fatalf("expected 1 datagram once END arrives, got %d", len(out))
	}
	if !bytes.Equal(out[0], []byte("hello world")) {
		t.Fatalf("datagram = %q, want %q", out[0], "hello world")
	}
}

func TestFramerMultipleDatagramsOnePush(t *testing.T) {
	f := NewFramer()
	var buf []byte
	buf = append(buf, Encode([]byte("one"))...)
	buf = append(buf, Encode([]byte("two"))...)
	buf = append(buf, Encode([]byte("three"))...)

	out := f.PushBytes(buf)
	if len(out) != 3 {
		t.Fatalf("expected 3 datagrams, got %d", len(out))
	}
	want := []string{"one", "two", "three"}
	for i, w := range want {
		if string(out[i]) != w {
			t.Errorf("datagram %d = %q, want %q", i, out[i], w)
		}
	}
}

func TestFramerToleratesLeadingEnd(t *testing.T) {
	f := NewFramer()
	buf := append([]byte{End, End}, Encode([]byte("x"))...)
	out := f.PushBytes(buf)
	if len(out) != 1 || string(out[0]) != "x" {
		t.Fatalf("leading END bytes should be discarded, got %v", out)
	}
}

// TestFramerBadDatagramDoesNotDesync ensures a single corrupt datagram
// is discarded without derailing subsequent, well-formed ones, per
// spec.md §9's "wait for END" design note.
func TestFramerBadDatagramDoesNotDesync(t *testing.T) {
	f := NewFramer()

	var errCount int
	f.OnError(func(error) { errCount++ })

	corrupt := append([]byte{1, Esc, 0x99}, End) // invalid escape follow-byte
	var buf []byte
	buf = append(buf, corrupt...)
	buf = append(buf, Encode([]byte("good"))...)

	out := f.PushBytes(buf)
	if errCount != 1 {
		t.Fatalf("expected exactly one decode error, got %d", errCount)
	}
	if len(out) != 1 || string(out[0]) != "good" {
		t.Fatalf("expected the well-formed datagram after the corrupt one to survive, got %v", out)
	}
}

func TestFramerPending(t *testing.T) {
	f := NewFramer()
	f.PushBytes([]byte{1, 2, 3})
	if len(f.Pending()) != 3 {
		t.Fatalf("Pending() = %v, want 3 buffered bytes", f.Pending())
	}
}
