package transport

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	"github.com/osc-go/osc/osc"
	"github.com/osc-go/osc/slip"
)

// SerialPort carries SLIP-framed OSC datagrams over a serial link, the
// way a TCPClient/TCPServer pair does over a socket. Grounded on the
// teacher-pack's ESP32 flashing tool, which wraps the same go.bug.st/serial
// port for a different payload.
type SerialPort struct {
	port     serial.Port
	portName string
	baudRate int
	framer   *slip.Framer
}

// OpenSerial opens portName at baudRate with 8N1 framing and a short
// read timeout suited to polling.
func OpenSerial(portName string, baudRate int) (*SerialPort, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("transport: opening serial port %s: %w", portName, err)
	}
	if err := port.SetReadTimeout(100 * time.Millisecond); err != nil {
		port.Close()
		return nil, fmt.Errorf("transport: setting read timeout: %w", err)
	}

	return &SerialPort{
		port:     port,
		portName: portName,
		baudRate: baudRate,
		framer:   slip.NewFramer(),
	}, nil
}

// Close closes the port.
func (p *SerialPort) Close() error {
	return p.port.Close()
}

// PortName returns the OS device name the port was opened with.
func (p *SerialPort) PortName() string { return p.portName }

// BaudRate returns the configured baud rate.
func (p *SerialPort) BaudRate() int { return p.baudRate }

// Send SLIP-frames packet and writes it to the port.
func (p *SerialPort) Send(packet osc.Packet) error {
	data, err := packet.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = p.port.Write(slip.Encode(data))
	return err
}

// Poll reads whatever bytes are currently available (bounded by the
// port's read timeout) and returns any OSC packets the SLIP framer
// completed as a result. Intended to be called in a loop.
func (p *SerialPort) Poll() ([]osc.Packet, error) {
	buf := make([]byte, 1024)
	n, err := p.port.Read(buf)
	if err != nil {
		return nil, err
	}

	var packets []osc.Packet
	for _, datagram := range p.framer.PushBytes(buf[:n]) {
		packet, err := osc.ParsePacket(datagram)
		if err != nil {
			continue
		}
		packets = append(packets, packet)
	}
	return packets, nil
}

// ListSerialPorts returns the names of available serial ports.
func ListSerialPorts() ([]string, error) {
	return serial.GetPortsList()
}
