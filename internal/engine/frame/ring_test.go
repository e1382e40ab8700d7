package frame

import "testing"

// testFence is a manually advanced fence.
type testFence struct {
	completed uint64
	waits     []uint64
}

func (f *testFence) Completed() uint64 { return f.completed }

func (f *testFence) Wait(value uint64) {
	f.waits = append(f.waits, value)
	// Pretend the GPU caught up.
	if value > f.completed {
		f.completed = value
	}
}

func TestRingDepthValidation(t *testing.T) {
	if _, err := NewRing(1, 0, 0, &testFence{}); err == nil {
		t.Error("depth 1 should be rejected")
	}
	if _, err := NewRing(2, 0, 0, &testFence{}); err != nil {
		t.Errorf("depth 2 should be accepted: %v", err)
	}
}

func TestAdvanceCycles(t *testing.T) {
	r, err := NewRing(3, 4, 2, &testFence{})
	if err != nil {
		t.Fatal(err)
	}

	seen := map[*Resource]bool{}
	for i := 0; i < 3; i++ {
		seen[r.Advance()] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 distinct resources, got %d", len(seen))
	}

	// Fourth advance wraps to the first slot again.
	first := r.Advance()
	if !seen[first] {
		t.Error("fourth advance should reuse a slot")
	}
}

func TestAdvanceWaitsForIncompleteSlot(t *testing.T) {
	fence := &testFence{}
	r, err := NewRing(2, 1, 1, fence)
	if err != nil {
		t.Fatal(err)
	}

	// Submit on both slots.
	r.Advance()
	r.Signal(1)
	r.Advance()
	r.Signal(2)

	// Slot 1 was submitted with fence value 1 and the GPU has not signaled
	// anything: the next advance must wait.
	r.Advance()
	if len(fence.waits) != 1 || fence.waits[0] != 1 {
		t.Errorf("expected wait on value 1, got %v", fence.waits)
	}
}

func TestAdvanceSkipsWaitWhenComplete(t *testing.T) {
	fence := &testFence{completed: 10}
	r, err := NewRing(2, 1, 1, fence)
	if err != nil {
		t.Fatal(err)
	}

	r.Advance()
	r.Signal(1)
	r.Advance()
	r.Signal(2)
	r.Advance()

	if len(fence.waits) != 0 {
		t.Errorf("no wait expected when fence already complete, got %v", fence.waits)
	}
}

func TestFreshSlotNeverWaits(t *testing.T) {
	fence := &testFence{}
	r, err := NewRing(3, 1, 1, fence)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		r.Advance()
	}
	if len(fence.waits) != 0 {
		t.Errorf("unsubmitted slots must not block, got %v", fence.waits)
	}
}
