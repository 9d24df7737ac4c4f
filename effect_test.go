package vtl_test

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	gotesting "github.com/mitchellh/go-testing-interface"
	"github.com/vango-dev/vtl"
	"github.com/vango-dev/vtl/pkg/vango"
)

func awaitShort[T any](t *testing.T, p *vtl.Promise[T]) (T, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return p.Await(ctx)
}

func TestTestEffectAllowsAsyncTesting(t *testing.T) {
	value := vango.NewSignal(0)
	double := vango.NewMemo(func() int { return value.Get() * 2 })

	p := vtl.TestEffect(func(done func(int)) {
		vango.CreateEffect(func() vango.Cleanup {
			if v := double.Get(); v == 4 {
				done(v)
			}
			return nil
		})
	})
	value.Set(2)

	got, err := awaitShort(t, p)
	if err != nil {
		t.Fatalf("Await: %v", err)
	}
	if got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}

type store struct{ Error string }

var sink string

func TestTestEffectCatchesErrors(t *testing.T) {
	value := vango.NewSignal(&store{Error: "not yet"})

	p := vtl.TestEffect(func(done func(string)) {
		vango.CreateEffect(func() vango.Cleanup {
			sink = value.Get().Error
			value.Set(nil)
			return nil
		})
	})

	_, err := awaitShort(t, p)
	var rerr runtime.Error
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want a runtime.Error", err)
	}
}

func TestTestEffectRunsWithOwner(t *testing.T) {
	var owner *vango.Owner
	dispose := vango.CreateRoot(func(dispose func()) func() {
		owner = vango.GetOwner()
		return dispose
	})

	p := vtl.TestEffect(func(done func(bool)) {
		got := vango.GetOwner()
		dispose()
		done(got != nil && got.Parent() == owner)
	}, owner)

	below, err := awaitShort(t, p)
	if err != nil {
		t.Fatalf("Await: %v", err)
	}
	if !below {
		t.Error("fn should run below the given owner")
	}
}

func TestTestEffectWithOwnerSettlesOnLaterRuns(t *testing.T) {
	tests := []struct {
		name    string
		write   int
		want    int
		wantErr string
	}{
		{name: "later done resolves", write: 2, want: 2},
		{name: "later panic rejects", write: 1, wantErr: "second run failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var owner *vango.Owner
			dispose := vango.CreateRoot(func(dispose func()) func() {
				owner = vango.GetOwner()
				return dispose
			})
			t.Cleanup(dispose)

			count := vango.NewSignal(0)
			p := vtl.TestEffect(func(done func(int)) {
				vango.CreateEffect(func() vango.Cleanup {
					switch n := count.Get(); n {
					case 1:
						panic("second run failed")
					case 2:
						done(n)
					}
					return nil
				})
			}, owner)
			if p.Settled() {
				t.Fatal("promise settled before the write")
			}

			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Fatalf("panic escaped to the writer: %v", r)
					}
				}()
				count.Set(tt.write)
			}()

			got, err := p.Result()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Result() = %v, %v, want %v", got, err, tt.want)
			}
		})
	}
}

func TestTestEffectOwnerHandlerCatchesFirst(t *testing.T) {
	var owner *vango.Owner
	var caught error
	vango.CatchError(func() { owner = vango.GetOwner() }, func(err error) { caught = err })
	t.Cleanup(owner.Dispose)

	count := vango.NewSignal(0)
	p := vtl.TestEffect(func(done func(int)) {
		vango.CreateEffect(func() vango.Cleanup {
			if count.Get() == 1 {
				panic("handled above")
			}
			return nil
		})
	}, owner)
	count.Set(1)

	if caught == nil || !strings.Contains(caught.Error(), "handled above") {
		t.Errorf("owner handler got %v", caught)
	}
	if _, err := p.Result(); !errors.Is(err, vtl.ErrPending) {
		t.Errorf("Result() err = %v, want pending", err)
	}
}

func TestTestEffectT(t *testing.T) {
	got := vtl.TestEffectT(t, func(done func(string)) { done("ok") })
	if got != "ok" {
		t.Errorf("got %q, want ok", got)
	}
}

type fatalRecorder struct {
	gotesting.RuntimeT
	msg string
}

func (r *fatalRecorder) Fatalf(format string, args ...any) {
	r.msg = format
	if len(args) > 0 {
		if err, ok := args[0].(error); ok {
			r.msg = err.Error()
		}
	}
}

func TestTestEffectTReportsRejection(t *testing.T) {
	rec := &fatalRecorder{}
	vtl.TestEffectT(rec, func(done func(int)) { panic("boom") })
	if rec.msg == "" {
		t.Error("rejection should fail the test")
	}
}

func TestPromise(t *testing.T) {
	p := vtl.NewPromise[int]()
	if p.Settled() {
		t.Fatal("new promise should be pending")
	}
	if _, err := p.Result(); !errors.Is(err, vtl.ErrPending) {
		t.Errorf("Result() err = %v, want ErrPending", err)
	}

	if !p.Resolve(1) {
		t.Error("first Resolve should settle")
	}
	if p.Resolve(2) || p.Reject(errors.New("late")) {
		t.Error("a settled promise should ignore later results")
	}

	v, err := p.Result()
	if v != 1 || err != nil {
		t.Errorf("Result() = %d, %v", v, err)
	}
	select {
	case <-p.Done():
	default:
		t.Error("Done should be closed")
	}
}

func TestPromiseRejectNil(t *testing.T) {
	p := vtl.NewPromise[int]()
	p.Reject(nil)
	if _, err := p.Result(); err == nil {
		t.Error("rejecting with nil should still report an error")
	}
}

func TestPromiseAwaitContext(t *testing.T) {
	p := vtl.NewPromise[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := p.Await(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Await err = %v, want DeadlineExceeded", err)
	}
}
