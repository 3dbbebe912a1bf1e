package animations

import "testing"

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0)
	seen := []int{}
	for i := 0; i < 4; i++ {
		a.Update()
		seen = append(seen, a.Frame())
	}
	want := []int{1, 2, 0, 1}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("frames = %v; want %v", seen, want)
		}
	}
	if !a.Looped {
		t.Fatal("expected Looped after wrapping")
	}
}

func TestPlayerStartsClipOnce(t *testing.T) {
	p := NewPlayer(map[string]*Animation{
		"walk_down": NewAnimation(0, 3, 1, 0),
		"idle_down": NewAnimation(0, 1, 1, 0),
	})

	p.Play("walk_down")
	p.Update()
	p.Update()
	p.Play("walk_down")

	if p.Starts() != 1 {
		t.Fatalf("expected one start, got %d", p.Starts())
	}
	if p.Frame() != 2 {
		t.Fatalf("replaying the same clip must not restart it, frame %d", p.Frame())
	}

	p.Play("idle_down")
	if p.Starts() != 2 || p.Current() != "idle_down" || p.Frame() != 0 {
		t.Fatalf("unexpected state after switch: starts=%d current=%s frame=%d", p.Starts(), p.Current(), p.Frame())
	}

	p.Play("missing")
	if p.Current() != "idle_down" {
		t.Fatal("unknown clip must be ignored")
	}
}
