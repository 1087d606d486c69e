package transport

import (
	"fmt"
	"net"

	"github.com/osc-go/osc/osc"
	"github.com/osc-go/osc/slip"
)

// TCPClient sends OSC packets over a persistent TCP connection,
// SLIP-framing each one. This is the core-owned replacement for the
// teacher's Lobaro/slip-backed TCPClient.
type TCPClient struct {
	addr string
	conn net.Conn
}

// NewTCPClient targets addr ("host:port"). Call Connect before Send.
func NewTCPClient(addr string) *TCPClient {
	return &TCPClient{addr: addr}
}

// Connect dials the remote address.
func (c *TCPClient) Connect() error {
	conn, err := net.Dial("tcp", c.addr)
	if err != nil {
		return err
	}
	c.conn = conn
	return nil
}

// Close closes the underlying connection, if open.
func (c *TCPClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Send SLIP-frames packet and writes it to the connection.
func (c *TCPClient) Send(packet osc.Packet) error {
	if c.conn == nil {
		return fmt.Errorf("transport: tcp client is not connected")
	}
	data, err := packet.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = c.conn.Write(slip.Encode(data))
	return err
}

// TCPServer accepts connections on Addr, SLIP-unframes each stream into
// datagrams, and dispatches every decoded packet through Space.
type TCPServer struct {
	Addr  string
	Space *osc.AddressSpace
}

// NewTCPServer listens on addr and dispatches to space.
func NewTCPServer(addr string, space *osc.AddressSpace) *TCPServer {
	return &TCPServer{Addr: addr, Space: space}
}

// ListenAndServe accepts connections until the listener errors.
func (s *TCPServer) ListenAndServe() error {
	if s.Space == nil {
		s.Space = osc.NewAddressSpace()
	}
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(conn)
	}
}

// handleConn frames one connection's byte stream into datagrams and
// dispatches each. A single malformed datagram does not end the
// connection; the framer resynchronizes on the next END byte.
func (s *TCPServer) handleConn(conn net.Conn) {
	defer conn.Close()

	framer := slip.NewFramer()
	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		for _, datagram := range framer.PushBytes(buf[:n]) {
			packet, err := osc.ParsePacket(datagram)
			if err != nil {
				continue
			}
			s.Space.Dispatch(packet, nil)
		}
	}
}
