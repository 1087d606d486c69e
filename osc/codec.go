package osc

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// pad returns the number of zero bytes needed to bring n up to the next
// 4-byte boundary. This single formula backs every padded field in the
// wire format: strings (including the "#bundle" marker) and blobs.
func pad(n int) int {
	return (4 - n%4) % 4
}

func encodeInt32(v int32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(v))
	return buf
}

func encodeFloat32(v float32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, math.Float32bits(v))
	return buf
}

func encodeTimeTagBytes(tt TimeTag) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, tt.uint64())
	return buf
}

// encodeString renders s as OSC-string bytes: the UTF-8 encoding, one NUL
// terminator, then zero-padding to a 4-byte boundary. It fails with
// ErrStringEncodingFailure if s is not valid UTF-8.
func encodeString(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: %q", ErrStringEncodingFailure, s)
	}
	n := len(s) + 1
	out := make([]byte, n+pad(n))
	copy(out, s)
	return out, nil
}

// encodeBlob renders data as an OSC-blob: a signed int32 length, the raw
// bytes, then zero-padding to a 4-byte boundary.
func encodeBlob(data []byte) []byte {
	out := make([]byte, 4, 4+len(data)+pad(len(data)))
	binary.BigEndian.PutUint32(out, uint32(int32(len(data))))
	out = append(out, data...)
	out = append(out, make([]byte, pad(len(data)))...)
	return out
}

func decodeInt32(buf []byte, pos *int) (int32, error) {
	if *pos+4 > len(buf) {
		return 0, fmt.Errorf("%w: truncated int32", ErrInvalidMessage)
	}
	v := int32(binary.BigEndian.Uint32(buf[*pos : *pos+4]))
	*pos += 4
	return v, nil
}

func decodeFloat32(buf []byte, pos *int) (float32, error) {
	if *pos+4 > len(buf) {
		return 0, fmt.Errorf("%w: truncated float32", ErrInvalidMessage)
	}
	v := math.Float32frombits(binary.BigEndian.Uint32(buf[*pos : *pos+4]))
	*pos += 4
	return v, nil
}

func decodeTimeTagBytes(buf []byte, pos *int) (TimeTag, error) {
	if *pos+8 > len(buf) {
		return TimeTag{}, fmt.Errorf("%w: truncated timetag", ErrInvalidMessage)
	}
	v := binary.BigEndian.Uint64(buf[*pos : *pos+8])
	*pos += 8
	return timeTagFromUint64(v), nil
}

// decodeString reads a NUL-terminated string starting at *pos and
// advances *pos past it and its padding.
func decodeString(buf []byte, pos *int) (string, error) {
	start := *pos
	i := start
	for i < len(buf) && buf[i] != 0 {
		i++
	}
	if i >= len(buf) {
		return "", fmt.Errorf("%w: unterminated string", ErrInvalidMessage)
	}
	s := string(buf[start:i])
	n := i - start + 1
	advance := n + pad(n)
	if start+advance > len(buf) {
		return "", fmt.Errorf("%w: truncated string padding", ErrInvalidMessage)
	}
	*pos = start + advance
	return s, nil
}

// decodeBlob reads a length-prefixed blob starting at *pos and advances
// *pos past it and its padding. A negative length is rejected.
func decodeBlob(buf []byte, pos *int) ([]byte, error) {
	length, err := decodeInt32(buf, pos)
	if err != nil {
		return nil, fmt.Errorf("%w: truncated blob length", ErrInvalidMessage)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative blob length %d", ErrInvalidMessage, length)
	}
	n := int(length)
	if *pos+n > len(buf) {
		return nil, fmt.Errorf("%w: truncated blob data", ErrInvalidMessage)
	}
	data := make([]byte, n)
	copy(data, buf[*pos:*pos+n])
	*pos += n
	padLen := pad(n)
	if *pos+padLen > len(buf) {
		return nil, fmt.Errorf("%w: truncated blob padding", ErrInvalidMessage)
	}
	*pos += padLen
	return data, nil
}
