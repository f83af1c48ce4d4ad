package tui

import (
	"testing"
	"time"
)

func TestFrameClockStep(t *testing.T) {
	c := newFrameClock(50, 0.033)
	start := time.Unix(1000, 0)

	if dt := c.step(start); dt != 0.02 {
		t.Errorf("first step = %v, expected nominal 0.02", dt)
	}
	if dt := c.step(start.Add(10 * time.Millisecond)); dt != 0.01 {
		t.Errorf("step = %v, expected 0.01", dt)
	}
	if dt := c.step(start.Add(5 * time.Second)); dt != 0.033 {
		t.Errorf("stalled step = %v, expected clamp to 0.033", dt)
	}
	if dt := c.step(start); dt != 0 {
		t.Errorf("clock going backwards = %v, expected 0", dt)
	}
}

func TestFrameClockDefaultRate(t *testing.T) {
	c := newFrameClock(0, 1)
	if dt := c.step(time.Now()); dt != 1.0/60 {
		t.Errorf("first step = %v, expected 1/60", dt)
	}
}
