package motion

import "fmt"

// Policy selects how several held keys combine into one velocity.
type Policy int

const (
	// PolicyLastKeyWins moves in the direction of the newest held key only.
	// Four directions, no diagonals.
	PolicyLastKeyWins Policy = iota
	// PolicyAxisCancel sums both axes. Opposite keys cancel, two axes give a
	// diagonal normalized to unit length before scaling.
	PolicyAxisCancel
)

func (p Policy) String() string {
	switch p {
	case PolicyLastKeyWins:
		return "last-key-wins"
	case PolicyAxisCancel:
		return "axis-cancel"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy accepts the names produced by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "last-key-wins", "":
		return PolicyLastKeyWins, nil
	case "axis-cancel":
		return PolicyAxisCancel, nil
	}
	return PolicyLastKeyWins, fmt.Errorf("unknown movement policy %q", s)
}

// Resolve converts the held keys to a velocity whose length is speed, or
// zero when nothing moves.
func Resolve[K comparable](p Policy, s *KeyStack[K], speed float64) Vector {
	if s.Len() == 0 {
		return Vector{}
	}

	switch p {
	case PolicyAxisCancel:
		var v Vector
		for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
			if s.Held(d) {
				u := d.Unit()
				v.X += u.X
				v.Y += u.Y
			}
		}
		return v.Normalize().Scale(speed)
	default:
		return s.Top().Unit().Scale(speed)
	}
}
