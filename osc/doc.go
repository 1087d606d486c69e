// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>

/*
Package osc implements the Open Sound Control 1.1 wire format, the
address-pattern matching rules, and an address-space dispatcher.

The package is transport-agnostic: it knows how to turn a Message or
Bundle into bytes and back, and how to match an incoming message against
a set of registered methods, but it never opens a socket. Callers wire it
to UDP, TCP+SLIP (see the sibling slip package), or any other carrier.

An OSC packet is either a Message (an address pattern plus zero or more
typed arguments) or a Bundle (a time tag plus a list of nested messages
or bundles). Messages and bundles are parsed into an argument model of
nine tagged types: Int32, Float32, String, Blob, TimeTag, True, False,
Null and Impulse.

Address patterns support '?', '*', '[...]', '{...}' and the XPath-style
'//' descendant wildcard, matched against the fully qualified addresses
of registered methods via an AddressSpace.

Usage

Encoding a message:

	msg := osc.NewMessage("/synth/freq")
	msg.Append(osc.Float(440))
	data, err := msg.MarshalBinary()

Registering and dispatching:

	space := osc.NewAddressSpace()
	space.Register(&osc.Method{
		Address: "/synth/freq",
		Handler: osc.HandlerFunc(func(msg *osc.Message, kind osc.MatchKind, at *osc.TimeTag) {
			osc.PrintMessage(msg)
		}),
	})
	packet, _ := osc.ParsePacket(data)
	space.Dispatch(packet, nil)
*/
package osc
