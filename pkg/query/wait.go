package query

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/vango-dev/vtl/internal/errors"
	"golang.org/x/net/html"
)

// WaitFor calls fn until it returns nil, ctx is done or the timeout
// elapses. The last error of fn is wrapped in the timeout error.
func WaitFor(ctx context.Context, fn func() error, opts ...Option) error {
	o := newOptions(opts)
	if ctx != nil {
		o.Context = ctx
	}
	return waitFor(o, fn)
}

func waitFor(o *Options, fn func() error) error {
	ctx := o.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	interval := o.Interval
	if interval <= 0 {
		interval = GetConfig().AsyncInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := fn()
	for last != nil {
		select {
		case <-ctx.Done():
			return timeoutError(ctx.Err(), last)
		case <-ticker.C:
			last = fn()
		}
	}
	return nil
}

func timeoutError(cause, last error) error {
	return errors.New("Q003").Wrap(stderrors.Join(cause, last))
}

// ErrStillPresent is the last error of a timed out WaitForElementToBeRemoved.
var ErrStillPresent = stderrors.New("element is still present")

// WaitForElementToBeRemoved waits until nodes returns no element still
// attached to a parent. nodes must return at least one element on the
// first call.
func WaitForElementToBeRemoved(ctx context.Context, nodes func() []*html.Node, opts ...Option) error {
	if !present(nodes()) {
		return errors.New("R002").
			WithDetail("The element(s) given to WaitForElementToBeRemoved are already removed. " +
				"It requires that the element(s) exist(s) before waiting for removal.")
	}
	return WaitFor(ctx, func() error {
		if present(nodes()) {
			return ErrStillPresent
		}
		return nil
	}, opts...)
}

func present(nodes []*html.Node) bool {
	for _, n := range nodes {
		if n != nil && n.Parent != nil {
			return true
		}
	}
	return false
}
