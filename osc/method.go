package osc

// Handler reacts to a dispatched message. kind is the address-pattern
// classification that caused the handler to fire (Full or Container; a
// NoMatch never dispatches). at carries the time tag of the innermost
// enclosing bundle, or is nil if the message was dispatched directly (no
// bundle involved).
type Handler interface {
	Handle(msg *Message, kind MatchKind, at *TimeTag)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(msg *Message, kind MatchKind, at *TimeTag)

// Handle calls f.
func (f HandlerFunc) Handle(msg *Message, kind MatchKind, at *TimeTag) { f(msg, kind, at) }

// Method binds an address to a Handler. RequiredArguments, if non-empty,
// filters which incoming messages the method accepts: a message whose
// arguments don't satisfy MatchArgumentTypes is skipped even if its
// address matches.
type Method struct {
	Address           string
	RequiredArguments []ArgumentTypeTag
	Handler           Handler
}

// accepts reports the address-pattern classification for msg against m,
// and whether m's required arguments (if any) are also satisfied. A
// NoMatch address classification always fails regardless of arguments.
func (m *Method) accepts(msg *Message) (kind MatchKind, ok bool) {
	kind = MatchAddress(msg.Address, m.Address)
	if kind == NoMatch {
		return kind, false
	}
	if len(m.RequiredArguments) == 0 {
		return kind, true
	}
	return kind, MatchArgumentTypes(argKinds(msg.Arguments), m.RequiredArguments)
}
