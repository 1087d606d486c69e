package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/osc-go/osc/osc"
	"github.com/osc-go/osc/transport"
)

var (
	replayHost     string
	replayPort     int
	replayProto    string
	replayInterval time.Duration
	replayLoop     bool
)

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <address> [<address> ...]",
		Short: "Send a sequence of addresses at a fixed interval",
		Long: `Send a fixed sequence of bare addresses (no arguments) spaced by
--interval, optionally looping forever, matching the teacher's LED
blink-sequence mains.

  oscctl replay /led/1/high /led/1/low /led/2/high /led/2/low --loop`,
		Args: cobra.MinimumNArgs(1),
		RunE: runReplay,
	}
	cmd.Flags().StringVar(&replayHost, "host", "127.0.0.1", "target host")
	cmd.Flags().IntVar(&replayPort, "port", 9000, "target port")
	cmd.Flags().StringVar(&replayProto, "proto", "udp", "transport: udp or tcp")
	cmd.Flags().DurationVar(&replayInterval, "interval", 500*time.Millisecond, "delay between sends")
	cmd.Flags().BoolVar(&replayLoop, "loop", false, "repeat the sequence forever")
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	messages := make([]*osc.Message, len(args))
	for i, address := range args {
		if err := osc.ValidateAddress(address); err != nil {
			return fmt.Errorf("oscctl: %w", err)
		}
		messages[i] = osc.NewMessage(address)
	}

	var sender keySender
	switch replayProto {
	case "udp":
		sender = transport.NewUDPClient(replayHost, replayPort)
	case "tcp":
		tc := transport.NewTCPClient(fmt.Sprintf("%s:%d", replayHost, replayPort))
		if err := tc.Connect(); err != nil {
			return fmt.Errorf("oscctl: connecting over tcp: %w", err)
		}
		defer tc.Close()
		sender = tc
	default:
		return fmt.Errorf("oscctl: unknown --proto %q (want udp or tcp)", replayProto)
	}

	for {
		for _, msg := range messages {
			if err := sender.Send(msg); err != nil {
				return fmt.Errorf("oscctl: sending %s: %w", msg.Address, err)
			}
			fmt.Println("sent", msg.Address)
			time.Sleep(replayInterval)
		}
		if !replayLoop {
			return nil
		}
	}
}
