package main

import (
	"fmt"

	"github.com/eiannone/keyboard"
	"github.com/spf13/cobra"

	"github.com/osc-go/osc/osc"
	"github.com/osc-go/osc/transport"
)

var (
	keysHost    string
	keysPort    int
	keysProto   string
	keysMapping []string
)

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Fire OSC messages interactively from the keyboard",
		Long: `Bind single keys to OSC addresses and fire a message on each
keypress, the way the teacher's keyboard-driven LED sender did.

  oscctl keys --bind 1=/led/1/high --bind 4=/led/1/low --proto tcp

Press ESC to quit.`,
		RunE: runKeys,
	}
	cmd.Flags().StringVar(&keysHost, "host", "127.0.0.1", "target host")
	cmd.Flags().IntVar(&keysPort, "port", 9000, "target port")
	cmd.Flags().StringVar(&keysProto, "proto", "tcp", "transport: udp or tcp")
	cmd.Flags().StringArrayVar(&keysMapping, "bind", nil, "key=address binding, e.g. 1=/led/1/high (repeatable)")
	return cmd
}

type keySender interface {
	Send(packet osc.Packet) error
}

func runKeys(cmd *cobra.Command, args []string) error {
	if len(keysMapping) == 0 {
		return fmt.Errorf("oscctl: keys needs at least one --bind key=address")
	}

	bindings := make(map[rune]*osc.Message)
	for _, raw := range keysMapping {
		key, address, err := splitBinding(raw)
		if err != nil {
			return err
		}
		bindings[key] = osc.NewMessage(address)
	}

	var sender keySender
	switch keysProto {
	case "udp":
		sender = transport.NewUDPClient(keysHost, keysPort)
	case "tcp":
		tc := transport.NewTCPClient(fmt.Sprintf("%s:%d", keysHost, keysPort))
		if err := tc.Connect(); err != nil {
			return fmt.Errorf("oscctl: connecting over tcp: %w", err)
		}
		defer tc.Close()
		sender = tc
	default:
		return fmt.Errorf("oscctl: unknown --proto %q (want udp or tcp)", keysProto)
	}

	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("oscctl: opening keyboard: %w", err)
	}
	defer keyboard.Close()

	fmt.Println("oscctl: press a bound key to send, ESC to quit")
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("oscctl: reading key: %w", err)
		}
		if key == keyboard.KeyEsc {
			return nil
		}
		msg, bound := bindings[char]
		if !bound {
			continue
		}
		if err := sender.Send(msg); err != nil {
			fmt.Println("oscctl: send failed:", err)
			continue
		}
		fmt.Printf("sent %s -> %s\n", string(char), msg.Address)
	}
}

func splitBinding(raw string) (rune, string, error) {
	runes := []rune(raw)
	for i, r := range runes {
		if r == '=' {
			if i != 1 {
				return 0, "", fmt.Errorf("oscctl: --bind %q must be a single key, '=', then an address", raw)
			}
			address := string(runes[i+1:])
			if err := osc.ValidateAddress(address); err != nil {
				return 0, "", fmt.Errorf("oscctl: --bind %q: %w", raw, err)
			}
			return runes[0], address, nil
		}
	}
	return 0, "", fmt.Errorf("oscctl: --bind %q is missing '='", raw)
}
