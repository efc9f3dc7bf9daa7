//go:build stm32

package board

import "machine"

// Name identifies the STM32 board revision.
const Name = "arduboy-stm32"

// DefaultConfig mutes notes exactly when their duration runs out.
var DefaultConfig = Config{}

// Configure sets up the pins of the STM32 board and returns its Core.
func Configure(cfg Config) (*Core, error) {
	lines := &pinLines{
		dc:  machine.PC0,
		clk: machine.PC1,
		d0:  machine.PC2,
		d1:  machine.PC3,
	}
	buttons := &pinButtons{
		machine.PB8,  // A
		machine.PB9,  // B
		machine.NoPin,
		machine.NoPin,
		machine.PB12, // Right
		machine.PB13, // Left
		machine.PB14, // Up
		machine.PB15, // Down
	}
	return configure(lines, buttons, cfg)
}
