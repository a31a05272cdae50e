package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Type('b')
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has() reports wrong actions")
	}
	if f.Empty() {
		t.Error("frame with actions should not be empty")
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("frame should be empty after Clear, got %+v", f)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Type('a')

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionJump) || len(c.Text) != 1 || c.Text[0] != 'a' {
		t.Errorf("clone lost data after original was cleared: %+v", c)
	}
}

func TestRuntimeConfigSeconds(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}
	if cfg.Seconds(90) != 1.5 {
		t.Errorf("Seconds(90) = %v, expected 1.5", cfg.Seconds(90))
	}

	var zero RuntimeConfig
	if zero.Seconds(60) != 1 {
		t.Errorf("zero tick rate should fall back to 60, got %v", zero.Seconds(60))
	}
}
