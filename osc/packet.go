package osc

import "fmt"

// ParsePacket is the entry point for decoding an arbitrary OSC datagram.
// It peeks the first byte: '/' decodes a Message, '#' decodes a Bundle,
// anything else (or an empty buffer) is ErrInvalidPacket.
func ParsePacket(data []byte) (Packet, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidPacket)
	}

	switch data[0] {
	case '/':
		return unmarshalMessage(data)
	case '#':
		return unmarshalBundle(data)
	default:
		return nil, fmt.Errorf("%w: leading byte %q is neither '/' nor '#'", ErrInvalidPacket, data[0])
	}
}
