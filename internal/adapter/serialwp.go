package adapter

import (
	"errors"
	"fmt"
	"time"

	"go.bug.st/serial"
)

// modemLines is the part of serial.Port the line needs.
type modemLines interface {
	SetRTS(rts bool) error
	GetModemStatusBits() (*serial.ModemStatusBits, error)
	Close() error
}

// SerialWP drives a write protect line wired to the RTS output of a USB
// serial adapter, with the line looped back into CTS for read back.
type SerialWP struct {
	port   modemLines
	settle time.Duration
}

// OpenSerialWP opens name with both modem outputs released.
func OpenSerialWP(name string) (*SerialWP, error) {
	mode := &serial.Mode{
		BaudRate:          115200,
		DataBits:          8,
		StopBits:          serial.OneStopBit,
		Parity:            serial.NoParity,
		InitialStatusBits: &serial.ModemOutputBits{RTS: false, DTR: false},
	}

	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	return newSerialWP(port, 100*time.Millisecond), nil
}

func newSerialWP(port modemLines, settle time.Duration) *SerialWP {
	return &SerialWP{port: port, settle: settle}
}

// Get reads the looped back CTS input.
func (s *SerialWP) Get() (bool, error) {
	bits, err := s.port.GetModemStatusBits()
	if err != nil {
		return false, fmt.Errorf("failed to read modem status: %w", err)
	}

	return bits.CTS, nil
}

// Set drives RTS and checks CTS follows once the line settles.
func (s *SerialWP) Set(enable bool) error {
	if err := s.port.SetRTS(enable); err != nil {
		return fmt.Errorf("failed to drive RTS: %w", err)
	}

	time.Sleep(s.settle)

	state, err := s.Get()
	if err != nil {
		return err
	}

	if state != enable {
		return errors.New("write protect line did not follow RTS, check the CTS loopback")
	}

	return nil
}

// Close releases the port; RTS drops with it.
func (s *SerialWP) Close() error {
	return s.port.Close()
}
