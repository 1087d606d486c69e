package osc

import (
	"encoding/binary"
	"fmt"
)

// bundleTag is the literal marker bundles start with. It is itself a
// valid OSC string: 7 bytes plus a NUL terminator, already 8 bytes long
// with no further padding needed (pad(8) == 0).
const bundleTag = "#bundle"

// BundleElement is the two-case sum Message | Bundle that a Bundle holds.
// Exactly one of Message or Bundle is non-nil.
type BundleElement struct {
	Message *Message
	Bundle  *Bundle
}

// MessageElement wraps a Message as a BundleElement.
func MessageElement(m *Message) BundleElement { return BundleElement{Message: m} }

// BundleElementOf wraps a nested Bundle as a BundleElement.
func BundleElementOf(b *Bundle) BundleElement { return BundleElement{Bundle: b} }

// IsMessage reports whether the element holds a Message.
func (e BundleElement) IsMessage() bool { return e.Message != nil }

// IsBundle reports whether the element holds a nested Bundle.
func (e BundleElement) IsBundle() bool { return e.Bundle != nil }

// Packet is the interface for Message and Bundle: anything the wire
// dispatcher (ParsePacket) can hand back, and anything an AddressSpace
// can Dispatch.
type Packet interface {
	MarshalBinary() ([]byte, error)
}

// Bundle is a time tag plus an ordered list of nested messages or
// bundles. Every nested bundle's time tag must be greater than or equal
// to the enclosing bundle's, both on decode (enforced, §8 invariant 4)
// and on encode (enforced by AppendBundle, resolving spec.md §9's open
// question in favor of symmetry).
type Bundle struct {
	TimeTag  TimeTag
	Elements []BundleElement
}

// NewBundle returns an empty Bundle carrying tt.
func NewBundle(tt TimeTag) *Bundle {
	return &Bundle{TimeTag: tt}
}

// AppendMessage adds a message element.
func (b *Bundle) AppendMessage(m *Message) {
	b.Elements = append(b.Elements, MessageElement(m))
}

// AppendBundle adds a nested bundle element. It fails if nested's time
// tag precedes b's, keeping the monotonicity invariant enforced
// symmetrically on both encode and decode.
func (b *Bundle) AppendBundle(nested *Bundle) error {
	if nested.TimeTag.Before(b.TimeTag) {
		return fmt.Errorf("%w: nested timetag precedes enclosing bundle's", ErrInvalidBundle)
	}
	b.Elements = append(b.Elements, BundleElementOf(nested))
	return nil
}

// MarshalBinary encodes the bundle to its wire form: the literal
// "#bundle\0", the time tag, then each element as (int32 size, size
// bytes of that element's own recursive encoding).
func (b *Bundle) MarshalBinary() ([]byte, error) {
	tagBytes, err := encodeString(bundleTag)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(tagBytes)+8+64*len(b.Elements))
	out = append(out, tagBytes...)
	out = append(out, encodeTimeTagBytes(b.TimeTag)...)

	for _, elem := range b.Elements {
		var packet Packet
		switch {
		case elem.IsMessage():
			packet = elem.Message
		case elem.IsBundle():
			packet = elem.Bundle
		default:
			return nil, fmt.Errorf("%w: empty bundle element", ErrInvalidBundle)
		}

		body, err := packet.MarshalBinary()
		if err != nil {
			return nil, err
		}

		sizeBuf := make([]byte, 4)
		binary.BigEndian.PutUint32(sizeBuf, uint32(int32(len(body))))
		out = append(out, sizeBuf...)
		out = append(out, body...)
	}

	return out, nil
}

// unmarshalBundle decodes a bundle from data, which must begin with the
// literal "#bundle" marker.
func unmarshalBundle(data []byte) (*Bundle, error) {
	pos := 0

	marker, err := decodeString(data, &pos)
	if err != nil {
		return nil, fmt.Errorf("%w: reading bundle marker: %v", ErrInvalidBundle, err)
	}
	if marker != bundleTag {
		return nil, fmt.Errorf("%w: bad bundle marker %q", ErrInvalidBundle, marker)
	}

	tt, err := decodeTimeTagBytes(data, &pos)
	if err != nil {
		return nil, fmt.Errorf("%w: reading timetag: %v", ErrInvalidBundle, err)
	}

	bundle := &Bundle{TimeTag: tt}

	for pos < len(data) {
		size, err := decodeInt32(data, &pos)
		if err != nil {
			return nil, fmt.Errorf("%w: reading element size: %v", ErrInvalidBundle, err)
		}
		if size < 0 || pos+int(size) > len(data) {
			return nil, fmt.Errorf("%w: element size %d out of range", ErrInvalidBundle, size)
		}

		elemData := data[pos : pos+int(size)]
		pos += int(size)

		packet, err := ParsePacket(elemData)
		if err != nil {
			return nil, fmt.Errorf("%w: decoding element: %v", ErrInvalidBundle, err)
		}

		switch p := packet.(type) {
		case *Message:
			bundle.Elements = append(bundle.Elements, MessageElement(p))
		case *Bundle:
			if p.TimeTag.Before(tt) {
				return nil, fmt.Errorf("%w: nested timetag precedes enclosing bundle's", ErrInvalidBundle)
			}
			bundle.Elements = append(bundle.Elements, BundleElementOf(p))
		default:
			return nil, fmt.Errorf("%w: unsupported nested packet type", ErrInvalidBundle)
		}
	}

	return bundle, nil
}
