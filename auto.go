package vtl

import (
	"sync"

	"github.com/mitchellh/go-testing-interface"
	"github.com/vango-dev/vtl/internal/config"
	"github.com/vango-dev/vtl/pkg/vango"
)

type setupKey struct {
	t   testing.T
	reg *MountRegistry
}

// registered remembers which tests already run Cleanup on exit.
var registered sync.Map

// Setup makes t clean up every mount of the default registry when the
// test finishes, then releases the test goroutine's reactive state. It is
// safe to call more than once per test; a nil t does nothing. Setting
// VTL_SKIP_AUTO_CLEANUP to a true value disables it.
//
// The sweep covers mounts made by any test. Tests that call t.Parallel
// should render with their own Options.Registry, which is then the only
// registry their cleanup sweeps.
func Setup(t testing.T) {
	setup(t, nil)
}

func setup(t testing.T, reg *MountRegistry) {
	if t == nil || config.SkipAutoCleanup() {
		return
	}
	key := setupKey{t: t, reg: reg}
	if _, loaded := registered.LoadOrStore(key, struct{}{}); loaded {
		return
	}
	t.Cleanup(func() {
		registered.Delete(key)
		registryOrDefault(reg).Sweep()
		vango.ReleaseGoroutine()
	})
}
