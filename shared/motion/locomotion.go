package motion

// Clip names one animation: walking or standing while facing a direction.
type Clip struct {
	Facing  Direction
	Walking bool
}

// Locomotion is the idle/walking state machine that drives animation clips.
// A clip is only started on a real transition so a walk cycle is never
// restarted mid-play.
type Locomotion struct {
	Facing Direction
	Moving bool
}

// NewLocomotion starts idle, facing down.
func NewLocomotion() Locomotion {
	return Locomotion{Facing: DirDown}
}

// Update feeds the resolved velocity. It returns the clip to start and true
// when the state changed; otherwise the current clip keeps playing.
func (l *Locomotion) Update(v Vector) (Clip, bool) {
	if v.IsZero() {
		if !l.Moving {
			return l.Clip(), false
		}
		l.Moving = false
		return l.Clip(), true
	}

	dir := DirectionOf(v)
	if l.Moving && dir == l.Facing {
		return l.Clip(), false
	}
	l.Moving = true
	l.Facing = dir
	return l.Clip(), true
}

func (l Locomotion) Clip() Clip {
	return Clip{Facing: l.Facing, Walking: l.Moving}
}
