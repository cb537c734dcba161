package deferred

// Mode fixes how many arguments the next step of a chain accepts.
type Mode int

const (
	// ModeCurry steps take exactly one argument.
	ModeCurry Mode = iota

	// ModePartial steps take every remaining argument at once.
	ModePartial
)

func (m Mode) String() string {
	switch m {
	case ModeCurry:
		return "Currying"
	case ModePartial:
		return "Partial application"
	default:
		return "Unknown"
	}
}
