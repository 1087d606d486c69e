package osc

import (
	"fmt"
	"sync"
)

// AddressSpace is a registry of methods, safe for concurrent use: one
// goroutine may Dispatch while others Register or Deregister, per
// spec.md §5's concurrency contract.
type AddressSpace struct {
	mu      sync.RWMutex
	methods []*Method
}

// NewAddressSpace returns an empty AddressSpace.
func NewAddressSpace() *AddressSpace {
	return &AddressSpace{}
}

// Register adds m to the space. It fails if m.Address is not a valid
// method address (see ValidateAddress).
func (s *AddressSpace) Register(m *Method) error {
	if err := ValidateAddress(m.Address); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods = append(s.methods, m)
	return nil
}

// Deregister removes m, identified by pointer, from the space. It is a
// no-op if m was never registered or already removed.
func (s *AddressSpace) Deregister(m *Method) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.methods {
		if existing == m {
			s.methods = append(s.methods[:i], s.methods[i+1:]...)
			return
		}
	}
}

// DeregisterAll empties the space.
func (s *AddressSpace) DeregisterAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.methods = nil
}

// Methods returns a snapshot of the currently registered methods.
func (s *AddressSpace) Methods() []*Method {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Method, len(s.methods))
	copy(out, s.methods)
	return out
}

// Dispatch routes packet to every registered method whose address and
// required arguments match. A Message is matched directly; a Bundle has
// its elements dispatched in order, each carrying the bundle's own time
// tag as its enclosing time tag (nested bundles replace it with their
// own, deeper in the recursion). at is the enclosing time tag for packet
// itself, or nil for a top-level call with no enclosing bundle.
func (s *AddressSpace) Dispatch(packet Packet, at *TimeTag) error {
	switch p := packet.(type) {
	case *Message:
		s.dispatchMessage(p, at)
		return nil
	case *Bundle:
		tt := p.TimeTag
		for _, elem := range p.Elements {
			switch {
			case elem.IsMessage():
				s.dispatchMessage(elem.Message, &tt)
			case elem.IsBundle():
				if err := s.Dispatch(elem.Bundle, &tt); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported packet type %T", ErrInvalidPacket, packet)
	}
}

// dispatchMessage invokes the handler of every currently registered
// method that accepts msg. The method list is snapshotted under the read
// lock so handlers may themselves call Register/Deregister without
// deadlocking.
func (s *AddressSpace) dispatchMessage(msg *Message, at *TimeTag) {
	s.mu.RLock()
	methods := make([]*Method, len(s.methods))
	copy(methods, s.methods)
	s.mu.RUnlock()

	for _, m := range methods {
		if kind, ok := m.accepts(msg); ok {
			m.Handler.Handle(msg, kind, at)
		}
	}
}
