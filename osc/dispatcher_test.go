package osc

import (
	"errors"
	"testing"
)

func TestAddressSpaceRegisterValidatesAddress(t *testing.T) {
	space := NewAddressSpace()
	m := &Method{Address: "/bad address", Handler: HandlerFunc(func(*Message, MatchKind, *TimeTag) {})}
	if err := space.Register(m); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
	if len(space.Methods()) != 0 {
		t.Fatalf("a rejected registration must leave the address space unchanged")
	}
}

func TestAddressSpaceDeregisterByIdentity(t *testing.T) {
	space := NewAddressSpace()
	calls := 0
	m1 := &Method{Address: "/a", Handler: HandlerFunc(func(*Message, MatchKind, *TimeTag) { calls++ })}
	m2 := &Method{Address: "/a", Handler: HandlerFunc(func(*Message, MatchKind, *TimeTag) { calls++ })}
	mustRegister(t, space, m1)
	mustRegister(t, space, m2)

	space.Deregister(m1)
	if len(space.Methods()) != 1 {
		t.Fatalf("expected 1 method after deregistering one of two duplicates")
	}

	msg := NewMessage("/a")
	if err := space.Dispatch(msg, nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 (only m2 should remain)", calls)
	}
}

func TestAddressSpaceDeregisterAll(t *testing.T) {
	space := NewAddressSpace()
	mustRegister(t, space, &Method{Address: "/a", Handler: HandlerFunc(func(*Message, MatchKind, *TimeTag) {})})
	mustRegister(t, space, &Method{Address: "/b", Handler: HandlerFunc(func(*Message, MatchKind, *TimeTag) {})})
	space.DeregisterAll()
	if len(space.Methods()) != 0 {
		t.Fatalf("expected empty address space after DeregisterAll")
	}
}

func TestAddressSpaceDispatchFiltersByRequiredArguments(t *testing.T) {
	space := NewAddressSpace()
	called := false
	mustRegister(t, space, &Method{
		Address:           "/note",
		RequiredArguments: []ArgumentTypeTag{TagFor(KindInt32), TagFor(KindFloat32)},
		Handler:           HandlerFunc(func(*Message, MatchKind, *TimeTag) { called = true }),
	})

	wrongShape := NewMessage("/note")
	wrongShape.Append(Str("nope"))
	if err := space.Dispatch(wrongShape, nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if called {
		t.Fatalf("handler must not fire when required arguments don't match")
	}

	rightShape := NewMessage("/note")
	rightShape.Append(Int(60))
	rightShape.Append(Float(0.8))
	if err := space.Dispatch(rightShape, nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !called {
		t.Fatalf("handler must fire when required arguments match")
	}
}

func TestAddressSpaceDispatchContainerStillInvokes(t *testing.T) {
	// Dispatch invokes every method whose match is not None; a Container
	// match (pattern names a container prefix of the address) still
	// counts, per spec.md §4.5.
	space := NewAddressSpace()
	called := false
	mustRegister(t, space, &Method{Address: "/a/b", Handler: HandlerFunc(func(*Message, MatchKind, *TimeTag) { called = true })})

	msg := NewMessage("/a")
	if err := space.Dispatch(msg, nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !called {
		t.Fatalf("a Container-classified match must still invoke the handler")
	}
}

// TestAddressSpaceDispatchBundleS6 seeds scenario S6 from spec §8: a
// bundle of six messages dispatched to six registered methods, each
// invoked exactly once, in registration order, receiving the bundle's
// time tag.
func TestAddressSpaceDispatchBundleS6(t *testing.T) {
	space := NewAddressSpace()

	var order []string
	var seenTimeTags []TimeTag
	for i := 0; i < 6; i++ {
		addr := "/m" + string(rune('0'+i))
		name := addr
		mustRegister(t, space, &Method{
			Address: addr,
			Handler: HandlerFunc(func(msg *Message, kind MatchKind, at *TimeTag) {
				order = append(order, name)
				if at != nil {
					seenTimeTags = append(seenTimeTags, *at)
				}
			}),
		})
	}

	tt := TimeTag{Seconds: 500, Picoseconds: 1}
	b := NewBundle(tt)
	for i := 0; i < 6; i++ {
		addr := "/m" + string(rune('0'+i))
		b.AppendMessage(NewMessage(addr))
	}

	if err := space.Dispatch(b, nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if len(order) != 6 {
		t.Fatalf("expected 6 handler invocations, got %d", len(order))
	}
	for i, name := range order {
		want := "/m" + string(rune('0'+i))
		if name != want {
			t.Errorf("invocation %d = %q, want %q (registration order)", i, name, want)
		}
	}
	if len(seenTimeTags) != 6 {
		t.Fatalf("expected every handler to see the enclosing time tag, got %d", len(seenTimeTags))
	}
	for _, got := range seenTimeTags {
		if got != tt {
			t.Errorf("enclosing time tag = %+v, want %+v", got, tt)
		}
	}
}

func TestAddressSpaceDispatchTopLevelMessageHasNilEnclosing(t *testing.T) {
	space := NewAddressSpace()
	var saw *TimeTag
	seen := false
	mustRegister(t, space, &Method{
		Address: "/solo",
		Handler: HandlerFunc(func(_ *Message, _ MatchKind, at *TimeTag) { saw = at; seen = true }),
	})

	if err := space.Dispatch(NewMessage("/solo"), nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !seen {
		t.Fatalf("handler was not invoked")
	}
	if saw != nil {
		t.Fatalf("a top-level dispatch must pass a nil enclosing time tag")
	}
}

func mustRegister(t *testing.T, space *AddressSpace, m *Method) {
	t.Helper()
	if err := space.Register(m); err != nil {
		t.Fatalf("Register(%q): %v", m.Address, err)
	}
}
