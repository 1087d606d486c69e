package osc

import (
	"errors"
	"testing"
)

func TestParsePacketDispatchesMessage(t *testing.T) {
	msg := NewMessage("/foo")
	msg.Append(Int(1))
	encoded, err := msg.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	packet, err := ParsePacket(encoded)
	if err != nil {
		t.Fatalf("ParsePacket: %v", err)
	}
	got, ok := packet.(*Message)
	if !ok {
		t.Fatalf("ParsePacket returned %T, want *Message", packet)
	}
	if !got.Equal(msg) {
		t.Fatalf("ParsePacket message mismatch: got %v want %v", got, msg)
	}
}

func TestParsePacketDispatchesBundle(t *testing.T) {
	b := NewBundle(TimeTag{Seconds: 1})
	msg := NewMessage("/foo")
	b.AppendMessage(msg)
	encoded, err := b.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}

	packet, err := ParsePacket(encoded)
	if err != nil {
		t.Fatalf("ParsePacket: %v", err)
	}
	if _, ok := packet.(*Bundle); !ok {
		t.Fatalf("ParsePacket returned %T, want *Bundle", packet)
	}
}

func TestParsePacketRejectsEmpty(t *testing.T) {
	if _, err := ParsePacket(nil); !errors.Is(err, ErrInvalidPacket) {
		t.Fatalf("expected ErrInvalidPacket for empty buffer, got %v", err)
	}
}

func TestParsePacketRejectsUnknownLeadByte(t *testing.T) {
	if _, err := ParsePacket([]byte("garbage")); !errors.Is(err, ErrInvalidPacket) {
		t.Fatalf("expected ErrInvalidPacket for unrecognized leading byte, got %v", err)
	}
}
