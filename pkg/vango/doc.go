// Package vango provides the fine-grained reactive core that vtl renders.
//
// Dependencies are tracked at runtime: reading a Signal inside an Effect or
// Memo subscribes that computation, and writing the Signal re-runs it.
// Effects re-run synchronously after the write that dirtied them, render
// effects before user effects, so tests observe a settled graph as soon as
// a Set or an event handler returns.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	count := NewSignal(0)
//	value := count.Get()  // Read (subscribes current listener)
//	count.Set(5)          // Write (re-runs dependents)
//	count.Update(func(n int) int { return n + 1 })
//
// Memo[T] is a cached derived computation:
//
//	doubled := NewMemo(func() int { return count.Get() * 2 })
//
// CreateEffect runs side effects when dependencies change:
//
//	CreateEffect(func() Cleanup {
//	    fmt.Println("Count is:", count.Get())
//	    return func() { /* cleanup */ }
//	})
//
// # Ownership
//
// Every computation belongs to an Owner. CreateRoot opens an isolated tree
// that is torn down as a unit by its dispose function; GetOwner captures the
// current position and RunWithOwner re-enters it later:
//
//	owner := CreateRoot(func(dispose func()) *Owner { return GetOwner() })
//	RunWithOwner(owner, func() {
//	    CreateEffect(...) // owned by the captured root
//	})
//
// # Errors
//
// A panic inside a computation is routed to the nearest CatchError handler
// up the owner chain. Without a handler the panic propagates to whoever
// triggered the update.
//
// # Thread Safety
//
// The tracking context is per-goroutine. The runtime is meant to be driven
// from a single goroutine, typically the test goroutine.
package vango
