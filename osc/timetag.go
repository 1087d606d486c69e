package osc

import "time"

// ntpEpochOffset is the number of seconds between the NTP epoch
// (1 Jan 1900, 00:00 UTC) and the Unix epoch (1 Jan 1970, 00:00 UTC).
const ntpEpochOffset = 2208988800

// Immediate is the reserved TimeTag value (seconds=0, picoseconds=1) that
// means "execute as soon as possible" rather than naming an instant.
var Immediate = TimeTag{Seconds: 0, Picoseconds: 1}

// TimeTag is a 64-bit NTP-epoch timestamp: 32 bits of whole seconds since
// midnight 1 Jan 1900 UTC, followed by 32 bits of fractional seconds (the
// OSC spec calls this fractional field "picoseconds"; it is in units of
// 1/2^32 of a second, giving roughly 200ps resolution). TimeTag{0,1} is
// the reserved "immediate" value; every other (0, p) is a normal instant
// very close to the epoch.
type TimeTag struct {
	Seconds     uint32
	Picoseconds uint32
}

// NewTimeTag converts a wall-clock instant to a TimeTag.
func NewTimeTag(t time.Time) TimeTag {
	secs := t.Unix() + ntpEpochOffset
	frac := uint64(t.Nanosecond()) << 32 / 1e9
	return TimeTag{Seconds: uint32(secs), Picoseconds: uint32(frac)}
}

// Time converts the TimeTag back to a wall-clock instant. The reserved
// "immediate" value converts to the zero time.Time.
func (tt TimeTag) Time() time.Time {
	if tt.IsImmediate() {
		return time.Time{}
	}
	secs := int64(tt.Seconds) - ntpEpochOffset
	nanos := (int64(tt.Picoseconds) * 1e9) >> 32
	return time.Unix(secs, nanos).UTC()
}

// IsImmediate reports whether tt is the reserved "immediate" value.
func (tt TimeTag) IsImmediate() bool {
	return tt == Immediate
}

// Before reports whether tt represents an instant strictly earlier than
// other, comparing the full (seconds, picoseconds) pair rather than a
// derived floating-point second count (per spec.md §9, to avoid
// precision loss).
func (tt TimeTag) Before(other TimeTag) bool {
	if tt.Seconds != other.Seconds {
		return tt.Seconds < other.Seconds
	}
	return tt.Picoseconds < other.Picoseconds
}

// uint64 packs the TimeTag into its 64-bit wire representation.
func (tt TimeTag) uint64() uint64 {
	return uint64(tt.Seconds)<<32 | uint64(tt.Picoseconds)
}

// timeTagFromUint64 unpacks the 64-bit wire representation into a TimeTag.
func timeTagFromUint64(v uint64) TimeTag {
	return TimeTag{Seconds: uint32(v >> 32), Picoseconds: uint32(v)}
}
