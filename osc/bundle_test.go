package osc

import (
	"errors"
	"testing"
)

func TestBundleRoundTrip(t *testing.T) {
	b := NewBundle(TimeTag{Seconds: 10, Picoseconds: 0})
	msg1 := NewMessage("/a")
	msg1.Append(Int(1))
	b.AppendMessage(msg1)

	nested := NewBundle(TimeTag{Seconds: 10, Picoseconds: 5})
	msg2 := NewMessage("/b")
	msg2.Append(Str("x"))
	nested.AppendMessage(msg2)
	if err := b.AppendBundle(nested); err != nil {
		t.Fatalf("AppendBundle: %v", err)
	}

	encoded, err := b.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(encoded)%4 != 0 {
		t.Fatalf("encoded bundle length %d is not 4-byte aligned", len(encoded))
	}

	decoded, err := unmarshalBundle(encoded)
	if err != nil {
		t.Fatalf("unmarshalBundle: %v", err)
	}
	if decoded.TimeTag != b.TimeTag {
		t.Fatalf("TimeTag = %+v, want %+v", decoded.TimeTag, b.TimeTag)
	}
	if len(decoded.Elements) != 2 {
		t.Fatalf("len(Elements) = %d, want 2", len(decoded.Elements))
	}
	if !decoded.Elements[0].IsMessage() || !decoded.Elements[0].Message.Equal(msg1) {
		t.Fatalf("first element mismatch")
	}
	if !decoded.Elements[1].IsBundle() {
		t.Fatalf("second element should be a nested bundle")
	}
	if decoded.Elements[1].Bundle.TimeTag != nested.TimeTag {
		t.Fatalf("nested TimeTag = %+v, want %+v", decoded.Elements[1].Bundle.TimeTag, nested.TimeTag)
	}
}

// TestBundleMonotonicityEncode seeds spec §9's second open question:
// AppendBundle rejects a nested timetag preceding the enclosing one.
func TestBundleMonotonicityEncode(t *testing.T) {
	outer := NewBundle(TimeTag{Seconds: 100})
	earlier := NewBundle(TimeTag{Seconds: 50})
	if err := outer.AppendBundle(earlier); !errors.Is(err, ErrInvalidBundle) {
		t.Fatalf("expected ErrInvalidBundle, got %v", err)
	}
}

// TestBundleMonotonicityDecodeS5 seeds scenario S5 from spec §8: a bundle
// built by hand (bypassing AppendBundle's own check) with a nested
// earlier timetag must fail to decode.
func TestBundleMonotonicityDecodeS5(t *testing.T) {
	outer := NewBundle(TimeTag{Seconds: 100})
	earlier := &Bundle{TimeTag: TimeTag{Seconds: 50}}
	outer.Elements = append(outer.Elements, BundleElementOf(earlier))

	encoded, err := outer.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if _, err := unmarshalBundle(encoded); !errors.Is(err, ErrInvalidBundle) {
		t.Fatalf("expected ErrInvalidBundle decoding a non-monotonic bundle, got %v", err)
	}
}

func TestBundleBadMarker(t *testing.T) {
	msg := NewMessage("/x")
	encoded, err := msg.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	// Force the '#' dispatch path with a message's own bytes, which don't
	// carry the "#bundle" marker.
	encoded[0] = '#'
	if _, err := unmarshalBundle(encoded); !errors.Is(err, ErrInvalidBundle) {
		t.Fatalf("expected ErrInvalidBundle for bad marker, got %v", err)
	}
}
