package mines

// Outcome is the result of a single [Board.Reveal] call.
type Outcome uint8

const (
	Safe Outcome = iota
	AlreadyRevealed
	OutOfBounds
	Mine
)

func (o Outcome) String() string {
	switch o {
	case Safe:
		return "safe"
	case AlreadyRevealed:
		return "already_revealed"
	case OutOfBounds:
		return "out_of_bounds"
	case Mine:
		return "mine"
	default:
		return "unknown"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
