package osc

import (
	"bytes"
	"fmt"
)

// ArgKind identifies the wire type of an Argument (or, for the synthetic
// pattern-only members declared below and used by typetag.go, a pattern
// that several wire types can satisfy). The nine wire kinds form a closed universe per spec.md §3; no
// caller can construct an Argument outside it.
type ArgKind int

const (
	KindInt32 ArgKind = iota
	KindFloat32
	KindString
	KindBlob
	KindTimeTag
	KindTrue
	KindFalse
	KindNull
	KindImpulse

	// Pattern-only kinds; never the Kind of a real Argument. See
	// typetag.go.
	kindAnyTag
	kindAnyBoolean
	kindAnyNumber
)

// tag returns the OSC type-tag character for a wire kind.
func (k ArgKind) tag() byte {
	switch k {
	case KindInt32:
		return 'i'
	case KindFloat32:
		return 'f'
	case KindString:
		return 's'
	case KindBlob:
		return 'b'
	case KindTimeTag:
		return 't'
	case KindTrue:
		return 'T'
	case KindFalse:
		return 'F'
	case KindNull:
		return 'N'
	case KindImpulse:
		return 'I'
	default:
		return 0
	}
}

func (k ArgKind) String() string {
	switch k {
	case KindInt32:
		return "Int32"
	case KindFloat32:
		return "Float32"
	case KindString:
		return "String"
	case KindBlob:
		return "Blob"
	case KindTimeTag:
		return "TimeTag"
	case KindTrue:
		return "True"
	case KindFalse:
		return "False"
	case KindNull:
		return "Null"
	case KindImpulse:
		return "Impulse"
	case kindAnyTag:
		return "AnyTag"
	case kindAnyBoolean:
		return "AnyBoolean"
	case kindAnyNumber:
		return "AnyNumber"
	default:
		return "Unknown"
	}
}

// kindFromTag maps an OSC type-tag character to its wire kind.
func kindFromTag(c byte) (ArgKind, error) {
	switch c {
	case 'i':
		return KindInt32, nil
	case 'f':
		return KindFloat32, nil
	case 's':
		return KindString, nil
	case 'b':
		return KindBlob, nil
	case 't':
		return KindTimeTag, nil
	case 'T':
		return KindTrue, nil
	case 'F':
		return KindFalse, nil
	case 'N':
		return KindNull, nil
	case 'I':
		return KindImpulse, nil
	default:
		return 0, fmt.Errorf("%w: unknown type tag %q", ErrInvalidArgumentList, c)
	}
}

// Argument is a tagged variant over the nine OSC argument types. The zero
// value is an Int32 of 0; use the constructors below to build one of a
// specific kind.
type Argument struct {
	kind ArgKind
	i    int32
	f    float32
	s    string
	b    []byte
	t    TimeTag
}

// Int constructs an Int32 argument.
func Int(v int32) Argument { return Argument{kind: KindInt32, i: v} }

// Float constructs a Float32 argument.
func Float(v float32) Argument { return Argument{kind: KindFloat32, f: v} }

// Str constructs a String argument.
func Str(v string) Argument { return Argument{kind: KindString, s: v} }

// BlobArg constructs a Blob argument.
func BlobArg(v []byte) Argument { return Argument{kind: KindBlob, b: v} }

// Time constructs a TimeTag argument.
func Time(v TimeTag) Argument { return Argument{kind: KindTimeTag, t: v} }

// True is the unit True argument.
var True = Argument{kind: KindTrue}

// False is the unit False argument.
var False = Argument{kind: KindFalse}

// Null is the unit Null (nil) argument.
var Null = Argument{kind: KindNull}

// Impulse is the unit Impulse (bang) argument.
var Impulse = Argument{kind: KindImpulse}

// Bool canonicalizes a bool to the True/False unit arguments (spec.md §9:
// the convenience Boolean(bool) variant lowers to True/False at
// construction so only two booleans ever exist at the model layer).
func Bool(v bool) Argument {
	if v {
		return True
	}
	return False
}

// Kind reports the argument's wire type.
func (a Argument) Kind() ArgKind { return a.kind }

// Int32 returns the argument's value if it is an Int32.
func (a Argument) Int32() (int32, bool) {
	if a.kind != KindInt32 {
		return 0, false
	}
	return a.i, true
}

// Float32 returns the argument's value if it is a Float32.
func (a Argument) Float32() (float32, bool) {
	if a.kind != KindFloat32 {
		return 0, false
	}
	return a.f, true
}

// StringValue returns the argument's value if it is a String.
func (a Argument) StringValue() (string, bool) {
	if a.kind != KindString {
		return "", false
	}
	return a.s, true
}

// Blob returns the argument's value if it is a Blob.
func (a Argument) Blob() ([]byte, bool) {
	if a.kind != KindBlob {
		return nil, false
	}
	return a.b, true
}

// TimeTagValue returns the argument's value if it is a TimeTag.
func (a Argument) TimeTagValue() (TimeTag, bool) {
	if a.kind != KindTimeTag {
		return TimeTag{}, false
	}
	return a.t, true
}

// Equal reports whether a and b carry the same kind and value.
func (a Argument) Equal(b Argument) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInt32:
		return a.i == b.i
	case KindFloat32:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindBlob:
		return bytes.Equal(a.b, b.b)
	case KindTimeTag:
		return a.t == b.t
	default:
		return true // unit kinds compare equal by kind alone
	}
}

// String renders a human-readable form of the argument's value, used by
// Message.String() when printing received traffic.
func (a Argument) String() string {
	switch a.kind {
	case KindInt32:
		return fmt.Sprintf("%d", a.i)
	case KindFloat32:
		return fmt.Sprintf("%g", a.f)
	case KindString:
		return a.s
	case KindBlob:
		return fmt.Sprintf("blob(%d bytes)", len(a.b))
	case KindTimeTag:
		return fmt.Sprintf("timetag(%d,%d)", a.t.Seconds, a.t.Picoseconds)
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNull:
		return "nil"
	case KindImpulse:
		return "impulse"
	default:
		return "?"
	}
}

// typeTagString builds the ',' + tag-characters type-tag string for a
// sequence of arguments.
func typeTagString(args []Argument) string {
	tags := make([]byte, 0, len(args)+1)
	tags = append(tags, ',')
	for _, a := range args {
		tags = append(tags, a.kind.tag())
	}
	return string(tags)
}

// parseTypeTagString strips the leading ',' and maps every remaining
// character to its wire kind. An empty string (missing ',') or an
// unrecognized character yields ErrInvalidArgumentList.
func parseTypeTagString(s string) ([]ArgKind, error) {
	if len(s) == 0 || s[0] != ',' {
		return nil, fmt.Errorf("%w: type-tag string must start with ','", ErrInvalidArgumentList)
	}
	rest := s[1:]
	kinds := make([]ArgKind, len(rest))
	for i := 0; i < len(rest); i++ {
		k, err := kindFromTag(rest[i])
		if err != nil {
			return nil, err
		}
		kinds[i] = k
	}
	return kinds, nil
}
