package vango

import (
	"errors"
	"runtime"
	"testing"
)

var sink int

func TestCreateRootDispose(t *testing.T) {
	s := NewSignal(0)
	runs := 0

	dispose := CreateRoot(func(dispose func()) func() {
		CreateEffect(func() Cleanup {
			_ = s.Get()
			runs++
			return nil
		})
		return dispose
	})

	s.Set(1)
	dispose()
	s.Set(2)

	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestCreateRootIsDetached(t *testing.T) {
	outer := NewOwner(nil)
	var inner *Owner

	RunWithOwner(outer, func() {
		inner = CreateRoot(func(func()) *Owner { return GetOwner() })
	})

	if inner.Parent() != nil {
		t.Error("root owner should have no parent")
	}
	if GetOwner() == inner {
		t.Error("owner should be restored after CreateRoot")
	}

	outer.Dispose()
	if inner.IsDisposed() {
		t.Error("disposing the outer owner should not dispose a root")
	}
}

func TestCreateRootIsUntracked(t *testing.T) {
	s := NewSignal(0)
	runs := 0

	CreateRoot(func(func()) any {
		CreateEffect(func() Cleanup {
			runs++
			CreateRoot(func(func()) int { return s.Get() })
			return nil
		})
		return nil
	})

	s.Set(1)
	if runs != 1 {
		t.Errorf("read inside nested root re-ran the effect %d times", runs)
	}
}

func TestRunWithOwner(t *testing.T) {
	owner := CreateRoot(func(func()) *Owner { return GetOwner() })

	var seen *Owner
	RunWithOwner(owner, func() {
		seen = GetOwner()
		OnCleanup(func() {})
	})
	if seen != owner {
		t.Error("RunWithOwner should install the owner")
	}
	if GetOwner() == owner {
		t.Error("RunWithOwner should restore the previous owner")
	}
}

func TestRunWithOwnerRestoresOnPanic(t *testing.T) {
	owner := NewOwner(nil)
	before := GetOwner()

	func() {
		defer func() { _ = recover() }()
		RunWithOwner(owner, func() { panic("boom") })
	}()

	if GetOwner() != before {
		t.Error("owner not restored after panic")
	}
	if getCurrentListener() != nil {
		t.Error("listener not restored after panic")
	}
}

func TestCatchErrorSync(t *testing.T) {
	var got error
	CatchError(func() {
		panic("boom")
	}, func(err error) { got = err })

	var pe *PanicError
	if !errors.As(got, &pe) {
		t.Fatalf("got %T, want *PanicError", got)
	}
	if pe.Value != "boom" {
		t.Errorf("Value = %v, want boom", pe.Value)
	}
}

func TestCatchErrorPassesErrorsThrough(t *testing.T) {
	sentinel := errors.New("sentinel")
	var got error
	CatchError(func() { panic(sentinel) }, func(err error) { got = err })

	if !errors.Is(got, sentinel) {
		t.Errorf("got %v, want sentinel", got)
	}
}

func TestCatchErrorAsync(t *testing.T) {
	s := NewSignal(map[string]int{"a": 1})
	var got error

	CreateRoot(func(func()) any {
		CatchError(func() {
			CreateEffect(func() Cleanup {
				var p *struct{ N int }
				if s.Get() == nil {
					sink = p.N
				}
				return nil
			})
		}, func(err error) { got = err })
		return nil
	})

	if got != nil {
		t.Fatalf("unexpected error %v", got)
	}

	s.Set(nil)

	var re runtime.Error
	if !errors.As(got, &re) {
		t.Errorf("got %T (%v), want runtime.Error", got, got)
	}
}

func TestUncaughtPanicPropagates(t *testing.T) {
	s := NewSignal(0)
	runs := 0

	CreateRoot(func(func()) any {
		CreateEffect(func() Cleanup {
			runs++
			if s.Get() == 1 {
				panic("effect failed")
			}
			return nil
		})
		return nil
	})

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		s.Set(1)
	}()
	if recovered != "effect failed" {
		t.Fatalf("recovered %v, want effect failed", recovered)
	}

	s.Set(2)
	if runs != 3 {
		t.Errorf("runs = %d, want 3", runs)
	}
}

func TestCatchErrorUnder(t *testing.T) {
	tests := []struct {
		name         string
		parentCatch  bool
		wantParent   bool
		wantFallback bool
	}{
		{name: "no handler above falls back", wantFallback: true},
		{name: "handler above wins", parentCatch: true, wantParent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var parentErr, fallbackErr error
			parent := NewOwner(nil)
			if tt.parentCatch {
				CatchError(func() { parent = GetOwner() }, func(err error) { parentErr = err })
			}
			defer parent.Dispose()

			s := NewSignal(0)
			boundary := CatchErrorUnder(parent, func() {
				CreateEffect(func() Cleanup {
					if s.Get() == 1 {
						panic("later run")
					}
					return nil
				})
			}, func(err error) { fallbackErr = err })

			if boundary.Parent() != parent {
				t.Fatal("boundary should be a child of parent")
			}
			s.Set(1)

			if (parentErr != nil) != tt.wantParent {
				t.Errorf("parent handler got %v", parentErr)
			}
			if (fallbackErr != nil) != tt.wantFallback {
				t.Errorf("fallback handler got %v", fallbackErr)
			}
		})
	}
}

func TestCatchErrorUnderSyncPanic(t *testing.T) {
	parent := NewOwner(nil)
	defer parent.Dispose()

	var got error
	CatchErrorUnder(parent, func() { panic(errors.New("boom")) }, func(err error) { got = err })
	if got == nil || got.Error() != "boom" {
		t.Errorf("handler got %v, want boom", got)
	}
}

func TestCatchErrorUnderDisposedWithParent(t *testing.T) {
	parent := NewOwner(nil)
	s := NewSignal(0)
	runs := 0
	CatchErrorUnder(parent, func() {
		CreateEffect(func() Cleanup {
			s.Get()
			runs++
			return nil
		})
	}, func(error) {})

	parent.Dispose()
	s.Set(1)
	if runs != 1 {
		t.Errorf("effect ran %d times after parent disposal, want 1", runs)
	}
}
