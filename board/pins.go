//go:build stm32 || nrf52840

package board

import (
	"machine"

	"github.com/tinygo-org/abgba/link"
)

// pinLines drives the link with plain GPIO writes.
type pinLines struct {
	dc, clk, d0, d1 machine.Pin
}

func (p *pinLines) Set(line link.Line, high bool) {
	switch line {
	case link.DataA:
		p.d0.Set(high)
	case link.DataB:
		p.d1.Set(high)
	case link.Clock:
		p.clk.Set(high)
	case link.CommandSelect:
		p.dc.Set(high)
	}
}

func (p *pinLines) PulseClock() {
	p.clk.Low()
	p.clk.High()
}

// pinButtons reads active low buttons, one pin per bit of Buttons.
type pinButtons [8]machine.Pin

func (b *pinButtons) ReadButtons() Buttons {
	var state Buttons
	for i, pin := range b {
		if pin != machine.NoPin && !pin.Get() {
			state |= 1 << i
		}
	}
	return state
}

// configure sets up the link outputs and button inputs and returns a Core
// using them.
func configure(lines *pinLines, buttons *pinButtons, cfg Config) (*Core, error) {
	used := make(map[machine.Pin]bool)
	claim := func(pin machine.Pin) error {
		if pin == machine.NoPin {
			return nil
		}
		if used[pin] {
			return ErrPinConflict
		}
		used[pin] = true
		return nil
	}
	for _, pin := range []machine.Pin{lines.dc, lines.clk, lines.d0, lines.d1} {
		if err := claim(pin); err != nil {
			return nil, err
		}
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}
	lines.clk.High()
	for _, pin := range buttons {
		if err := claim(pin); err != nil {
			return nil, err
		}
		if pin != machine.NoPin {
			pin.Configure(machine.PinConfig{Mode: machine.PinInput})
		}
	}
	return New(lines, buttons, cfg), nil
}
