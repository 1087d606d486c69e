package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/osc-go/osc/osc"
	"github.com/osc-go/osc/slip"
)

var (
	dumpAddr  string
	dumpProto string
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Listen for OSC traffic and print every message received",
		Long: `Listen on a local address and print every incoming message to
standard output, the way the teacher's dispatching-server examples did.

  oscctl dump --addr :9000 --proto udp`,
		RunE: runDump,
	}
	cmd.Flags().StringVar(&dumpAddr, "addr", ":9000", "local address to listen on")
	cmd.Flags().StringVar(&dumpProto, "proto", "udp", "transport: udp or tcp")
	return cmd
}

func runDump(cmd *cobra.Command, args []string) error {
	switch dumpProto {
	case "udp":
		return dumpUDP(dumpAddr)
	case "tcp":
		return dumpTCP(dumpAddr)
	default:
		return fmt.Errorf("oscctl: unknown --proto %q (want udp or tcp)", dumpProto)
	}
}

func dumpUDP(addr string) error {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return fmt.Errorf("oscctl: listening on %s: %w", addr, err)
	}
	defer conn.Close()
	fmt.Println("oscctl: listening for udp on", addr)

	buf := make([]byte, 65535)
	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			return err
		}
		datagram := make([]byte, n)
		copy(datagram, buf[:n])
		printPacket(from.String(), datagram)
	}
}

func dumpTCP(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("oscctl: listening on %s: %w", addr, err)
	}
	defer ln.Close()
	fmt.Println("oscctl: listening for tcp+slip on", addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go dumpConn(conn)
	}
}

func dumpConn(conn net.Conn) {
	defer conn.Close()
	from := conn.RemoteAddr().String()
	framer := slip.NewFramer()
	framer.OnError(func(err error) {
		fmt.Println("oscctl: dropping malformed frame from", from, "-", err)
	})

	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			return
		}
		for _, datagram := range framer.PushBytes(buf[:n]) {
			printPacket(from, datagram)
		}
	}
}

// printPacket decodes datagram and prints every message it contains,
// recursing through nested bundles, matching the teacher's console
// dump format but labeled with the peer address.
func printPacket(from string, datagram []byte) {
	packet, err := osc.ParsePacket(datagram)
	if err != nil {
		fmt.Printf("[%s] malformed packet: %v\n", from, err)
		return
	}
	printElement(from, packet)
}

func printElement(from string, packet osc.Packet) {
	switch p := packet.(type) {
	case *osc.Message:
		fmt.Printf("[%s] %s\n", from, p.String())
	case *osc.Bundle:
		for _, elem := range p.Elements {
			if elem.IsMessage() {
				printElement(from, elem.Message)
			} else if elem.IsBundle() {
				printElement(from, elem.Bundle)
			}
		}
	}
}
