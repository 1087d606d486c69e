package osc

import (
	"fmt"
	"strings"
)

// PrintMessage writes a message's diagnostic rendering to standard
// output, matching the teacher's console-debugging helper.
func PrintMessage(m *Message) {
	fmt.Println(m.String())
}

// Message is an OSC address pattern plus zero or more typed arguments.
// Arguments may be empty; the type-tag string "," alone is valid.
type Message struct {
	Address   string
	Arguments []Argument
}

// NewMessage returns an empty Message addressed to address.
func NewMessage(address string) *Message {
	return &Message{Address: address}
}

// Append adds an argument to the message.
func (m *Message) Append(a Argument) {
	m.Arguments = append(m.Arguments, a)
}

// CountArguments returns the number of arguments.
func (m *Message) CountArguments() int {
	return len(m.Arguments)
}

// TypeTags returns the type-tag string, e.g. ",iTfF".
func (m *Message) TypeTags() string {
	return typeTagString(m.Arguments)
}

// Equal reports whether m and b have the same address and
// argument-for-argument equal arguments.
func (m *Message) Equal(b *Message) bool {
	if m.Address != b.Address || len(m.Arguments) != len(b.Arguments) {
		return false
	}
	for i, a := range m.Arguments {
		if !a.Equal(b.Arguments[i]) {
			return false
		}
	}
	return true
}

// String renders the message for diagnostic printing.
func (m *Message) String() string {
	var sb strings.Builder
	sb.WriteString(m.Address)
	sb.WriteByte(' ')
	sb.WriteString(m.TypeTags())
	for _, a := range m.Arguments {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
	return sb.String()
}

// MarshalBinary encodes the message to its wire form: the address
// pattern, the type-tag string, then the concatenated argument bodies in
// order. It fails with ErrInvalidMessage if the address is empty.
func (m *Message) MarshalBinary() ([]byte, error) {
	if m.Address == "" {
		return nil, fmt.Errorf("%w: empty address", ErrInvalidMessage)
	}

	addrBytes, err := encodeString(m.Address)
	if err != nil {
		return nil, err
	}

	tagBytes, err := encodeString(m.TypeTags())
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(addrBytes)+len(tagBytes)+16*len(m.Arguments))
	out = append(out, addrBytes...)
	out = append(out, tagBytes...)

	for _, a := range m.Arguments {
		switch a.kind {
		case KindInt32:
			out = append(out, encodeInt32(a.i)...)
		case KindFloat32:
			out = append(out, encodeFloat32(a.f)...)
		case KindString:
			sb, err := encodeString(a.s)
			if err != nil {
				return nil, err
			}
			out = append(out, sb...)
		case KindBlob:
			out = append(out, encodeBlob(a.b)...)
		case KindTimeTag:
			out = append(out, encodeTimeTagBytes(a.t)...)
		case KindTrue, KindFalse, KindNull, KindImpulse:
			// unit types contribute no bytes to the payload
		}
	}

	return out, nil
}

// unmarshalMessage decodes a message from data, which must begin with a
// NUL-terminated address string starting with '/'. Trailing bytes beyond
// the last argument are ignored, per spec.md §4.3.
func unmarshalMessage(data []byte) (*Message, error) {
	pos := 0

	address, err := decodeString(data, &pos)
	if err != nil {
		return nil, fmt.Errorf("%w: reading address: %v", ErrInvalidMessage, err)
	}
	if !strings.HasPrefix(address, "/") {
		return nil, fmt.Errorf("%w: address %q must start with '/'", ErrInvalidMessage, address)
	}

	tagString, err := decodeString(data, &pos)
	if err != nil {
		return nil, fmt.Errorf("%w: reading type tags: %v", ErrInvalidMessage, err)
	}
	if len(tagString) == 0 || tagString[0] != ',' {
		return nil, fmt.Errorf("%w: type-tag string %q must start with ','", ErrInvalidMessage, tagString)
	}

	kinds, err := parseTypeTagString(tagString)
	if err != nil {
		return nil, err
	}

	args := make([]Argument, len(kinds))
	for i, k := range kinds {
		arg, err := decodeArgument(k, data, &pos)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	return &Message{Address: address, Arguments: args}, nil
}

func decodeArgument(kind ArgKind, buf []byte, pos *int) (Argument, error) {
	switch kind {
	case KindInt32:
		v, err := decodeInt32(buf, pos)
		return Int(v), err
	case KindFloat32:
		v, err := decodeFloat32(buf, pos)
		return Float(v), err
	case KindString:
		v, err := decodeString(buf, pos)
		return Str(v), err
	case KindBlob:
		v, err := decodeBlob(buf, pos)
		return BlobArg(v), err
	case KindTimeTag:
		v, err := decodeTimeTagBytes(buf, pos)
		return Time(v), err
	case KindTrue:
		return True, nil
	case KindFalse:
		return False, nil
	case KindNull:
		return Null, nil
	case KindImpulse:
		return Impulse, nil
	default:
		return Argument{}, fmt.Errorf("%w: unhandled kind %v", ErrInvalidMessage, kind)
	}
}
