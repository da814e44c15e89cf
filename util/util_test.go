package util_test

import (
	"testing"

	"github.com/hcavr/avrd/util"
)

func TestClampHigh(t *testing.T) {
	var (
		low   = 0.
		high  = 10.
		input = 20.
	)
	clamped := util.Clamp(input, low, high)
	if clamped != high {
		t.Errorf("expected out-of-range value %f clamped to %f, got %f", input, high, clamped)
	}
}

func TestClampLow(t *testing.T) {
	var (
		low   = 0.
		high  = 10.
		input = -1.
	)
	clamped := util.Clamp(input, low, high)
	if clamped != low {
		t.Errorf("expected out-of-range value %f clamped to %f, got %f", input, low, clamped)
	}
}

func TestClampInRange(t *testing.T) {
	clamped := util.Clamp(5, 0, 10)
	if clamped != 5 {
		t.Errorf("expected in-range value to pass through unchanged, got %f", clamped)
	}
}
