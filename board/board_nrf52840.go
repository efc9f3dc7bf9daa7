//go:build nrf52840

package board

import (
	"machine"

	"github.com/tinygo-org/abgba/tone"
)

// Name identifies the nRF52840 board revision.
const Name = "arduboy-nrf52840"

// DefaultConfig mutes one tick early; the sound channel on this revision
// clicks when a note is cut at zero.
var DefaultConfig = Config{
	Sound: tone.Config{MuteThreshold: tone.EarlyMute},
}

// spare is wired to the FPGA and must be held low.
const spare = machine.P0_08

// Configure sets up the pins of the nRF52840 board and returns its Core.
func Configure(cfg Config) (*Core, error) {
	lines := &pinLines{
		dc:  machine.P0_30,
		clk: machine.P0_28,
		d0:  machine.P0_27,
		d1:  machine.P0_26,
	}
	buttons := &pinButtons{
		machine.P0_02, // A
		machine.P0_03, // B
		machine.NoPin,
		machine.NoPin,
		machine.P0_04, // Right
		machine.P0_05, // Left
		machine.P0_06, // Up
		machine.P0_07, // Down
	}
	spare.Configure(machine.PinConfig{Mode: machine.PinOutput})
	spare.Low()
	return configure(lines, buttons, cfg)
}
