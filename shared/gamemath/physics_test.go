package gamemath

import "testing"

func TestRoundCoord(t *testing.T) {
	cases := map[float64]int{
		0:     0,
		10.4:  10,
		10.5:  11,
		-2.5:  -2,
		-2.6:  -3,
		599.9: 600,
	}
	for in, want := range cases {
		if got := RoundCoord(in); got != want {
			t.Errorf("RoundCoord(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestDisplayCoord(t *testing.T) {
	if got := DisplayCoord(10.7); got != 10 {
		t.Errorf("DisplayCoord(10.7) = %d", got)
	}
	if got := DisplayCoord(-3.2); got != -3 {
		t.Errorf("DisplayCoord(-3.2) = %d", got)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp out of range")
	}
}
