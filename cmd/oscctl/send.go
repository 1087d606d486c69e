package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osc-go/osc/transport"
)

var (
	sendHost  string
	sendPort  int
	sendProto string
)

func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <address> [TAG:VALUE ...]",
		Short: "Send a single OSC message",
		Long: `Send a single OSC message to a remote host.

Arguments are given as TAG:VALUE pairs: i (int32), f (float32), s
(string), b (hex-encoded blob), T/F/N/I (unit booleans/null/impulse).

  oscctl send /synth/freq f:440 --host 127.0.0.1 --port 9000`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSend,
	}
	cmd.Flags().StringVar(&sendHost, "host", "127.0.0.1", "target host")
	cmd.Flags().IntVar(&sendPort, "port", 9000, "target port")
	cmd.Flags().StringVar(&sendProto, "proto", "udp", "transport: udp or tcp")
	return cmd
}

func runSend(cmd *cobra.Command, args []string) error {
	msg, err := buildMessage(args[0], args[1:])
	if err != nil {
		return err
	}

	switch sendProto {
	case "udp":
		client := transport.NewUDPClient(sendHost, sendPort)
		if err := client.Send(msg); err != nil {
			return fmt.Errorf("oscctl: sending over udp: %w", err)
		}
	case "tcp":
		client := transport.NewTCPClient(fmt.Sprintf("%s:%d", sendHost, sendPort))
		if err := client.Connect(); err != nil {
			return fmt.Errorf("oscctl: connecting over tcp: %w", err)
		}
		defer client.Close()
		if err := client.Send(msg); err != nil {
			return fmt.Errorf("oscctl: sending over tcp: %w", err)
		}
	default:
		return fmt.Errorf("oscctl: unknown --proto %q (want udp or tcp)", sendProto)
	}

	fmt.Println("sent:", msg.String())
	return nil
}
