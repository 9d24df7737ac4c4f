package vtl

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/mitchellh/go-testing-interface"
	"github.com/vango-dev/vtl/internal/errors"
	"github.com/vango-dev/vtl/pkg/query"
	"github.com/vango-dev/vtl/pkg/vango"
	"go.opentelemetry.io/otel/attribute"
)

// ErrPending is returned by Promise.Result before the promise settles.
var ErrPending = stderrors.New("vtl: promise is pending")

// errNilRejection replaces a nil rejection reason.
var errNilRejection = stderrors.New("vtl: promise rejected with a nil error")

// Promise is a value that is settled once, by Resolve or Reject.
type Promise[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// NewPromise returns a pending promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

func (p *Promise[T]) settle(v T, err error) bool {
	settled := false
	p.once.Do(func() {
		p.value, p.err = v, err
		close(p.done)
		settled = true
	})
	return settled
}

// Resolve fulfills the promise with v. Only the first settlement counts;
// later calls return false.
func (p *Promise[T]) Resolve(v T) bool {
	return p.settle(v, nil)
}

// Reject fails the promise with err. Only the first settlement counts;
// later calls return false.
func (p *Promise[T]) Reject(err error) bool {
	if err == nil {
		err = errNilRejection
	}
	var zero T
	return p.settle(zero, err)
}

// Done is closed when the promise settles.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Settled reports whether the promise has settled.
func (p *Promise[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Result returns the outcome without blocking, or ErrPending.
func (p *Promise[T]) Result() (T, error) {
	if !p.Settled() {
		var zero T
		return zero, ErrPending
	}
	return p.value, p.err
}

// Await blocks until the promise settles or ctx is done.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TestEffect runs fn in a fresh reactive root and settles the returned
// promise when fn, or an effect created by fn, calls done. done disposes
// the root. A panic in fn or in any effect it created rejects the promise
// instead; the root then stays alive.
//
// With an owner, fn runs under a child of it, so context provided above
// the owner is visible and the owner's disposal stops the effects. Panics
// go to the owner's error handlers first and reject the promise only when
// none exists. done then also disposes that child.
//
//	p := vtl.TestEffect(func(done func(int)) {
//	    vango.CreateEffect(func() vango.Cleanup {
//	        if count.Get() == 2 {
//	            done(count.Get())
//	        }
//	        return nil
//	    })
//	    count.Set(2)
//	})
func TestEffect[T any](fn func(done func(T)), owner ...*vango.Owner) *Promise[T] {
	p := NewPromise[T]()
	withOwner := len(owner) > 0 && owner[0] != nil
	span := startSpan("vtl.test_effect", attribute.Bool("vtl.owner", withOwner))

	reject := func(err error) {
		if p.Reject(err) {
			endSpan(span, err)
		}
	}

	vango.CreateRoot(func(dispose func()) struct{} {
		var scope *vango.Owner
		done := func(v T) {
			if p.Resolve(v) {
				endSpan(span, nil)
			}
			if scope != nil {
				scope.Dispose()
			}
			dispose()
		}
		if !withOwner {
			vango.CatchError(func() { fn(done) }, reject)
			return struct{}{}
		}
		vango.CatchErrorUnder(owner[0], func() {
			scope = vango.GetOwner()
			fn(done)
		}, reject)
		return struct{}{}
	})

	return p
}

// TestEffectT runs TestEffect and waits for it with the configured async
// timeout. A rejection or timeout fails t.
func TestEffectT[T any](t testing.T, fn func(done func(T)), owner ...*vango.Owner) T {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), query.GetConfig().AsyncUtilTimeout)
	defer cancel()

	v, err := TestEffect(fn, owner...).Await(ctx)
	if err != nil {
		t.Fatalf("%v", errors.New("R001").Wrap(err))
	}
	return v
}
