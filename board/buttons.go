package board

// Buttons is a bitmask of pressed buttons.
type Buttons uint8

const (
	ButtonA     Buttons = 1 << 0
	ButtonB     Buttons = 1 << 1
	ButtonRight Buttons = 1 << 4
	ButtonLeft  Buttons = 1 << 5
	ButtonUp    Buttons = 1 << 6
	ButtonDown  Buttons = 1 << 7

	allButtons = ButtonA | ButtonB | ButtonRight | ButtonLeft | ButtonUp | ButtonDown
)

// Pressed reports whether every button in mask is down.
func (b Buttons) Pressed(mask Buttons) bool { return b&mask == mask }

// Any reports whether at least one button in mask is down.
func (b Buttons) Any(mask Buttons) bool { return b&mask != 0 }

func (b Buttons) String() string {
	if b&allButtons == 0 {
		return "none"
	}
	names := [8]string{"A", "B", "", "", "Right", "Left", "Up", "Down"}
	s := ""
	for i, name := range names {
		if name == "" || b&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "+"
		}
		s += name
	}
	return s
}
