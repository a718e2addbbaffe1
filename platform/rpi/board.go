// Package rpi wires the device to Raspberry Pi GPIO through periph.io.
package rpi

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/itohio/tagdisplay/config"
	"github.com/itohio/tagdisplay/dev"
)

// Board holds the configured GPIO lines.
type Board struct {
	Fire, Shield, Beacon dev.Input
	Tens, Units          dev.DigitPins

	segments []gpio.PinIO
}

// Open initialises the host drivers and claims every pin named in pins.
func Open(pins config.RPiPins) (*Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	return New(pins)
}

// New claims pins from the gpioreg registry. Inputs are pulled down and
// segment lines start low.
func New(pins config.RPiPins) (*Board, error) {
	b := &Board{}
	var err error
	if b.Fire, err = openInput(pins.Fire); err != nil {
		return nil, err
	}
	if b.Shield, err = openInput(pins.Shield); err != nil {
		return nil, err
	}
	if b.Beacon, err = openInput(pins.Beacon); err != nil {
		return nil, err
	}
	if b.Tens, err = b.openDigit(pins.Tens); err != nil {
		return nil, fmt.Errorf("tens digit: %w", err)
	}
	if b.Units, err = b.openDigit(pins.Units); err != nil {
		return nil, fmt.Errorf("units digit: %w", err)
	}
	return b, nil
}

// Halt drives every segment low. The process is expected to exit afterwards.
func (b *Board) Halt() {
	for _, p := range b.segments {
		_ = p.Out(gpio.Low)
	}
}

func lookup(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", dev.ErrPinNotFound, name)
	}
	return p, nil
}

func openInput(name string) (dev.Input, error) {
	p, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if err := p.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("configure %s: %w", name, err)
	}
	return input{p}, nil
}

func (b *Board) openDigit(names []string) (dev.DigitPins, error) {
	if len(names) != 7 {
		return dev.DigitPins{}, fmt.Errorf("%w: need 7 segment pins, got %d", dev.ErrPinNotFound, len(names))
	}
	var lines [7]dev.Output
	for i, name := range names {
		p, err := lookup(name)
		if err != nil {
			return dev.DigitPins{}, err
		}
		if err := p.Out(gpio.Low); err != nil {
			return dev.DigitPins{}, fmt.Errorf("configure %s: %w", name, err)
		}
		b.segments = append(b.segments, p)
		lines[i] = output{p}
	}
	return dev.DigitPins{
		A: lines[0], B: lines[1], C: lines[2], D: lines[3],
		E: lines[4], F: lines[5], G: lines[6],
	}, nil
}

type input struct {
	pin gpio.PinIO
}

func (i input) Get() bool {
	return i.pin.Read() == gpio.High
}

type output struct {
	pin gpio.PinIO
}

func (o output) Set(v bool) {
	_ = o.pin.Out(gpio.Level(v))
}
