package vtl_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vango-dev/vtl"
	"github.com/vango-dev/vtl/pkg/vango"
)

// gathered sums the samples of the named metric family.
func gathered(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var sum float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			sum += m.GetCounter().GetValue() + m.GetGauge().GetValue()
		}
	}
	return sum
}

func TestMetrics(t *testing.T) {
	promReg := prometheus.NewRegistry()
	c := vtl.EnableMetrics(vtl.WithRegistry(promReg))
	t.Cleanup(vtl.DisableMetrics)

	if c == nil || vtl.GetMetrics() == nil {
		t.Fatal("metrics should be enabled")
	}

	reg := vtl.NewMountRegistry()
	vtl.Render(func() any { return "a" }, vtl.Options{Registry: reg})
	vtl.RenderHookFunc(func() int { return 1 }, vtl.HookOptions[struct{}]{Registry: reg})
	vtl.Render(func() any {
		vango.OnCleanup(func() { panic("cleanup failed") })
		return nil
	}, vtl.Options{Registry: reg})

	if got := gathered(t, promReg, "vtl_mounts_total"); got != 3 {
		t.Errorf("mounts_total = %v, want 3", got)
	}
	if got := gathered(t, promReg, "vtl_active_mounts"); got != 3 {
		t.Errorf("active_mounts = %v, want 3", got)
	}

	reg.Sweep()

	if got := gathered(t, promReg, "vtl_active_mounts"); got != 0 {
		t.Errorf("active_mounts after Sweep = %v, want 0", got)
	}
	if got := gathered(t, promReg, "vtl_cleanup_failures_total"); got != 1 {
		t.Errorf("cleanup_failures_total = %v, want 1", got)
	}
}

func TestMetricsOptions(t *testing.T) {
	promReg := prometheus.NewRegistry()
	vtl.EnableMetrics(
		vtl.WithRegistry(promReg),
		vtl.WithNamespace("app"),
		vtl.WithSubsystem("ui"),
		vtl.WithConstLabels(prometheus.Labels{"suite": "metrics"}),
	)
	t.Cleanup(vtl.DisableMetrics)

	reg := vtl.NewMountRegistry()
	reg.Add(&vtl.Mount{})
	defer reg.Clear()

	if got := gathered(t, promReg, "app_ui_mounts_total"); got != 1 {
		t.Errorf("app_ui_mounts_total = %v, want 1", got)
	}
}

func TestMetricsDisabled(t *testing.T) {
	vtl.DisableMetrics()
	if vtl.GetMetrics() != nil {
		t.Error("GetMetrics should be nil when disabled")
	}

	reg := vtl.NewMountRegistry()
	reg.Add(&vtl.Mount{})
	reg.Sweep()
}
