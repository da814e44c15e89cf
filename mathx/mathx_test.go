package mathx_test

import (
	"testing"

	"github.com/hcavr/avrd/mathx"
)

func TestRoundToHalfStep(t *testing.T) {
	cases := []struct {
		in, unit, want float64
	}{
		{42.3, 0.5, 42.5},
		{42.2, 0.5, 42.0},
		{0, 0.5, 0},
		{98, 0.5, 98},
	}
	for _, c := range cases {
		if got := mathx.Round(c.in, c.unit); got != c.want {
			t.Errorf("Round(%v, %v) = %v, want %v", c.in, c.unit, got, c.want)
		}
	}
}
