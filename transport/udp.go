// Package transport wires the core osc and slip packages to concrete
// carriers: UDP packets, TCP+SLIP streams, and SLIP-framed serial ports.
// None of this is part of the wire format or matching engine; it is the
// thin collaborator layer spec.md §1 calls out of scope for the core.
package transport

import (
	"fmt"
	"net"
	"time"

	"github.com/osc-go/osc/osc"
)

// UDPClient sends OSC packets to a fixed remote address over UDP,
// dialing a fresh connection per send (datagram sockets have no
// persistent connection state worth holding open).
type UDPClient struct {
	host  string
	port  int
	laddr *net.UDPAddr
}

// NewUDPClient targets host:port.
func NewUDPClient(host string, port int) *UDPClient {
	return &UDPClient{host: host, port: port}
}

// SetLocalAddr binds the client to a specific local address, e.g. to
// pick a source interface.
func (c *UDPClient) SetLocalAddr(host string, port int) error {
	laddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return err
	}
	c.laddr = laddr
	return nil
}

// Send encodes packet and writes it as a single UDP datagram.
func (c *UDPClient) Send(packet osc.Packet) error {
	raddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", c.host, c.port))
	if err != nil {
		return err
	}
	conn, err := net.DialUDP("udp", c.laddr, raddr)
	if err != nil {
		return err
	}
	defer conn.Close()

	data, err := packet.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = conn.Write(data)
	return err
}

// UDPServer receives OSC datagrams on Addr and dispatches each one
// through Space.
type UDPServer struct {
	Addr        string
	Space       *osc.AddressSpace
	ReadTimeout time.Duration
}

// NewUDPServer listens on addr and dispatches to space.
func NewUDPServer(addr string, space *osc.AddressSpace) *UDPServer {
	return &UDPServer{Addr: addr, Space: space}
}

// ListenAndServe opens a UDP socket on s.Addr and serves it until error.
func (s *UDPServer) ListenAndServe() error {
	if s.Space == nil {
		s.Space = osc.NewAddressSpace()
	}
	conn, err := net.ListenPacket("udp", s.Addr)
	if err != nil {
		return err
	}
	return s.Serve(conn)
}

// Serve reads datagrams from conn, parses each as a Packet, and
// dispatches it. A malformed datagram is dropped; a temporary network
// error backs off exponentially up to one second, matching the
// teacher's read loop.
func (s *UDPServer) Serve(conn net.PacketConn) error {
	var tempDelay time.Duration
	buf := make([]byte, 65535)

	for {
		if s.ReadTimeout != 0 {
			conn.SetReadDeadline(time.Now().Add(s.ReadTimeout))
		}
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Temporary() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				time.Sleep(tempDelay)
				continue
			}
			return err
		}
		tempDelay = 0

		datagram := make([]byte, n)
		copy(datagram, buf[:n])

		packet, err := osc.ParsePacket(datagram)
		if err != nil {
			continue
		}
		go s.Space.Dispatch(packet, nil)
	}
}
