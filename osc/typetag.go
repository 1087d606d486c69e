package osc

// ArgumentTypeTag is used for pattern matching a method's required
// argument shape against an incoming message's actual arguments. It is
// never serialized to the wire; only Argument values are. It is a
// superset of the nine wire kinds plus three synthetic ones (AnyTag,
// AnyBoolean, AnyNumber) and an Optional wrapper.
type ArgumentTypeTag struct {
	kind     ArgKind
	optional bool
}

// TagFor wraps a concrete wire kind (Int32, Float32, ...) as a required
// pattern element.
func TagFor(kind ArgKind) ArgumentTypeTag { return ArgumentTypeTag{kind: kind} }

// AnyTag matches any single argument.
var AnyTag = ArgumentTypeTag{kind: kindAnyTag}

// AnyBoolean matches True or False.
var AnyBoolean = ArgumentTypeTag{kind: kindAnyBoolean}

// AnyNumber matches Int32 or Float32.
var AnyNumber = ArgumentTypeTag{kind: kindAnyNumber}

// Optional wraps a tag so it may be absent from a trailing position of a
// tag pattern. Optional may appear only in trailing positions; see
// MatchArgumentTypes.
func Optional(tag ArgumentTypeTag) ArgumentTypeTag {
	tag.optional = true
	return tag
}

// IsOptional reports whether tag was built with Optional.
func (tag ArgumentTypeTag) IsOptional() bool { return tag.optional }

// matchesKind reports whether a concrete argument kind satisfies this pattern
// element, per the elementwise rules of spec.md §4.2.
func (tag ArgumentTypeTag) matchesKind(arg ArgKind) bool {
	switch tag.kind {
	case kindAnyTag:
		return true
	case kindAnyBoolean:
		return arg == KindTrue || arg == KindFalse
	case kindAnyNumber:
		return arg == KindInt32 || arg == KindFloat32
	default:
		return arg == tag.kind
	}
}

// MatchArgumentTypes implements the type-tag pattern match of spec.md
// §4.2: args is the sequence of wire kinds carried by an actual message;
// pattern is a method's required-argument shape. A pattern with a
// non-Optional element following an Optional one is malformed and never
// matches.
func MatchArgumentTypes(args []ArgKind, pattern []ArgumentTypeTag) bool {
	if len(pattern) < len(args) {
		return false
	}

	k := len(pattern)
	for i, p := range pattern {
		if p.optional {
			k = i
			break
		}
	}

	for i := k; i < len(pattern); i++ {
		if !pattern[i].optional {
			return false
		}
	}

	if len(args) < k {
		return false
	}

	for i := 0; i < k; i++ {
		if !pattern[i].matchesKind(args[i]) {
			return false
		}
	}

	for i := k; i < len(args); i++ {
		if !pattern[i].matchesKind(args[i]) {
			return false
		}
	}

	return true
}

// argKinds extracts the wire kinds of a message's arguments, for passing
// to MatchArgumentTypes.
func argKinds(args []Argument) []ArgKind {
	kinds := make([]ArgKind, len(args))
	for i, a := range args {
		kinds[i] = a.kind
	}
	return kinds
}
