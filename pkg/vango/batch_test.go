package vango

import "testing"

func TestBatchCoalescesUpdates(t *testing.T) {
	first := NewSignal("John")
	last := NewSignal("Smith")
	runs := 0
	var full string

	CreateRoot(func(func()) any {
		CreateEffect(func() Cleanup {
			full = first.Get() + " " + last.Get()
			runs++
			return nil
		})
		return nil
	})

	Batch(func() {
		first.Set("Jane")
		last.Set("Doe")
		if runs != 1 {
			t.Errorf("effect ran inside batch")
		}
	})

	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
	if full != "Jane Doe" {
		t.Errorf("full = %q, want Jane Doe", full)
	}
}

func TestNestedBatch(t *testing.T) {
	s := NewSignal(0)
	runs := 0

	CreateRoot(func(func()) any {
		CreateEffect(func() Cleanup {
			_ = s.Get()
			runs++
			return nil
		})
		return nil
	})

	Batch(func() {
		Batch(func() {
			s.Set(1)
		})
		if runs != 1 {
			t.Error("inner batch should not flush")
		}
		s.Set(2)
	})

	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestUntracked(t *testing.T) {
	s := NewSignal(0)
	runs := 0

	CreateRoot(func(func()) any {
		CreateEffect(func() Cleanup {
			Untracked(func() { _ = s.Get() })
			_ = Untrack(s.Get)
			runs++
			return nil
		})
		return nil
	})

	s.Set(1)
	if runs != 1 {
		t.Errorf("untracked read caused %d runs, want 1", runs)
	}
}
