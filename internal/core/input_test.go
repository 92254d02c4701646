package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionRight)
	if !f.Has(ActionJump) || !f.Has(ActionRight) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should not share storage with the original")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionFire)
	if !zero.Has(ActionFire) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestTriggerRisingEdge(t *testing.T) {
	var tr Trigger

	levels := []bool{false, true, true, true, false, true, false, false, true}
	want := []bool{false, true, false, false, false, true, false, false, true}

	for i, lvl := range levels {
		if got := tr.Update(lvl); got != want[i] {
			t.Errorf("frame %d: Update(%v) = %v, expected %v", i, lvl, got, want[i])
		}
	}

	tr.Reset()
	if !tr.Update(true) {
		t.Error("after Reset a held button should fire again")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify to Unknown")
	}
}
