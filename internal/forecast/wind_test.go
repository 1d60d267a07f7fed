package forecast

import "testing"

func TestWindType(t *testing.T) {
	cases := []struct {
		orientation, windFrom int
		want                  string
	}{
		{90, 270, WindOffshore},
		{0, 180, WindOffshore},
		{90, 90, WindOnshore},
		{0, 0, WindOnshore},
		{0, 90, WindCrossed},
		{90, 0, WindCrossed},
		{0, 65, WindOnshore},
		{0, 66, WindCrossed},
		{0, 125, WindCrossed},
		{0, 126, WindOffshore},
		// Wrap-around: beach facing north, wind from just west of north.
		{0, 350, WindOnshore},
		{350, 10, WindOnshore},
	}
	for _, c := range cases {
		if got := WindType(c.orientation, c.windFrom); got != c.want {
			t.Errorf("WindType(%d, %d) = %q, want %q", c.orientation, c.windFrom, got, c.want)
		}
	}
}

func TestWindTypePeriodic(t *testing.T) {
	for _, c := range []struct{ o, w int }{{90, 90}, {0, 180}, {45, 300}, {200, 10}} {
		want := WindType(c.o, c.w)
		if got := WindType(c.o+360, c.w); got != want {
			t.Errorf("WindType(%d+360, %d) = %q, want %q", c.o, c.w, got, want)
		}
		if got := WindType(c.o, c.w+360); got != want {
			t.Errorf("WindType(%d, %d+360) = %q, want %q", c.o, c.w, got, want)
		}
	}
}
