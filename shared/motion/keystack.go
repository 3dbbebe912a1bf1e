package motion

// KeyStack tracks currently held movement keys in press order. A key is only
// tracked once; the most recently pressed key sits at the top.
type KeyStack[K comparable] struct {
	bindings map[K]Direction
	keys     []K
}

// NewKeyStack creates a stack that recognises the keys in bindings.
func NewKeyStack[K comparable](bindings map[K]Direction) *KeyStack[K] {
	return &KeyStack[K]{
		bindings: bindings,
		keys:     make([]K, 0, 4),
	}
}

// IsMovementKey reports whether code is bound to a direction.
func (s *KeyStack[K]) IsMovementKey(code K) bool {
	d, ok := s.bindings[code]
	return ok && d != DirNone
}

// OnKeyDown appends code if it is a movement key and not already held.
func (s *KeyStack[K]) OnKeyDown(code K) {
	if !s.IsMovementKey(code) || s.indexOf(code) != -1 {
		return
	}
	s.keys = append(s.keys, code)
}

// OnKeyUp removes code if held. The order of the remaining keys is kept.
func (s *KeyStack[K]) OnKeyUp(code K) {
	i := s.indexOf(code)
	if i == -1 {
		return
	}
	s.keys = append(s.keys[:i], s.keys[i+1:]...)
}

// Reset drops every held key (scene teardown, focus loss).
func (s *KeyStack[K]) Reset() {
	s.keys = s.keys[:0]
}

func (s *KeyStack[K]) Len() int {
	return len(s.keys)
}

// Keys returns a copy of the held keys, oldest first.
func (s *KeyStack[K]) Keys() []K {
	out := make([]K, len(s.keys))
	copy(out, s.keys)
	return out
}

// Top returns the direction of the most recently pressed key.
func (s *KeyStack[K]) Top() Direction {
	if len(s.keys) == 0 {
		return DirNone
	}
	return s.bindings[s.keys[len(s.keys)-1]]
}

// Held reports whether any held key maps to d.
func (s *KeyStack[K]) Held(d Direction) bool {
	for _, k := range s.keys {
		if s.bindings[k] == d {
			return true
		}
	}
	return false
}

func (s *KeyStack[K]) indexOf(code K) int {
	for i, k := range s.keys {
		if k == code {
			return i
		}
	}
	return -1
}
