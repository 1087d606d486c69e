package main

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/osc-go/osc/osc"
	"github.com/osc-go/osc/transport"
)

var (
	serialPortName string
	serialBaud     int
)

func newSerialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serial",
		Short: "Talk OSC over a SLIP-framed serial link",
	}
	cmd.PersistentFlags().StringVar(&serialPortName, "port", "", "serial device, e.g. /dev/ttyUSB0")
	cmd.PersistentFlags().IntVar(&serialBaud, "baud", 115200, "baud rate")

	cmd.AddCommand(newSerialListCmd(), newSerialSendCmd(), newSerialListenCmd())
	return cmd
}

func newSerialListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available serial ports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := transport.ListSerialPorts()
			if err != nil {
				return fmt.Errorf("oscctl: listing serial ports: %w", err)
			}
			if len(ports) == 0 {
				fmt.Println("no serial ports found")
				return nil
			}
			for _, p := range ports {
				fmt.Println(p)
			}
			return nil
		},
	}
}

func newSerialSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <address> [TAG:VALUE ...]",
		Short: "Send a single message over the serial port",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if serialPortName == "" {
				return fmt.Errorf("oscctl: --port is required")
			}
			msg, err := buildMessage(args[0], args[1:])
			if err != nil {
				return err
			}

			port, err := transport.OpenSerial(serialPortName, serialBaud)
			if err != nil {
				return err
			}
			defer port.Close()

			bar := progressbar.NewOptions(1,
				progressbar.OptionSetDescription("uploading"),
				progressbar.OptionShowCount(),
			)
			if err := port.Send(msg); err != nil {
				return fmt.Errorf("oscctl: sending over serial: %w", err)
			}
			bar.Add(1)
			fmt.Println()
			fmt.Println("sent:", msg.String())
			return nil
		},
	}
}

func newSerialListenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Poll the serial port and print every message received",
		RunE: func(cmd *cobra.Command, args []string) error {
			if serialPortName == "" {
				return fmt.Errorf("oscctl: --port is required")
			}

			port, err := transport.OpenSerial(serialPortName, serialBaud)
			if err != nil {
				return err
			}
			defer port.Close()

			fmt.Printf("oscctl: polling %s at %d baud, Ctrl-C to quit\n", port.PortName(), port.BaudRate())
			for {
				packets, err := port.Poll()
				if err != nil {
					return fmt.Errorf("oscctl: polling serial: %w", err)
				}
				for _, p := range packets {
					printSerialPacket(p)
				}
				time.Sleep(20 * time.Millisecond)
			}
		},
	}
}

func printSerialPacket(packet osc.Packet) {
	switch p := packet.(type) {
	case *osc.Message:
		fmt.Println(p.String())
	case *osc.Bundle:
		for _, elem := range p.Elements {
			if elem.IsMessage() {
				printSerialPacket(elem.Message)
			} else if elem.IsBundle() {
				printSerialPacket(elem.Bundle)
			}
		}
	}
}
