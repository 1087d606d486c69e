package transport

import (
	"net"
	"testing"
	"time"

	"github.com/osc-go/osc/osc"
)

func TestUDPClientServerRoundTrip(t *testing.T) {
	space := osc.NewAddressSpace()
	received := make(chan *osc.Message, 1)
	err := space.Register(&osc.Method{
		Address: "/ping",
		Handler: osc.HandlerFunc(func(msg *osc.Message, _ osc.MatchKind, _ *osc.TimeTag) {
			received <- msg
		}),
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	server := NewUDPServer("127.0.0.1:0", space)
	conn, err := net.ListenPacket("udp", server.Addr)
	if err != nil {
		t.Fatalf("ListenPacket: %v", err)
	}
	defer conn.Close()

	go server.Serve(conn)

	addr := conn.LocalAddr().(*net.UDPAddr)
	client := NewUDPClient(addr.IP.String(), addr.Port)

	msg := osc.NewMessage("/ping")
	msg.Append(osc.Int(1))
	if err := client.Send(msg); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case got := <-received:
		if got.Address != "/ping" {
			t.Fatalf("Address = %q, want /ping", got.Address)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for dispatched message")
	}
}
