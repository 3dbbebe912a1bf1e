// Package animations steps frame indices for sprite sheets. It holds no
// images so it can be driven headless.
package animations

type Animation struct {
	First      int
	Last       int
	Step       int     // how many indices do we move per frame
	SpeedInTps float32 // how many ticks before next frame

	frameCounter float32
	frame        int
	Looped       bool
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

// Player plays one clip at a time out of a set keyed by K.
type Player[K comparable] struct {
	clips   map[K]*Animation
	current K
	active  *Animation
	starts  int
}

func NewPlayer[K comparable](clips map[K]*Animation) *Player[K] {
	return &Player[K]{clips: clips}
}

// Play starts clip k from its first frame. Asking for the clip that is
// already playing does nothing, so a walk cycle is never cut short.
func (p *Player[K]) Play(k K) {
	if p.active != nil && p.current == k {
		return
	}
	anim, ok := p.clips[k]
	if !ok {
		return
	}
	p.current = k
	p.active = anim
	p.active.Restart()
	p.starts++
}

func (p *Player[K]) Update() {
	if p.active != nil {
		p.active.Update()
	}
}

func (p *Player[K]) Current() K { return p.current }

func (p *Player[K]) Frame() int {
	if p.active == nil {
		return 0
	}
	return p.active.Frame()
}

// Starts counts clip starts since creation.
func (p *Player[K]) Starts() int { return p.starts }
