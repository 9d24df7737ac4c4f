package query

import (
	"sort"
	"testing"

	"github.com/vango-dev/vtl/pkg/dom"
	"golang.org/x/net/html"
)

func TestFireEventMap(t *testing.T) {
	names := EventNames()
	sort.Strings(names)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			el := dom.CreateElement("div")
			typ := eventMap[name].typ
			calls := 0
			dom.AddEventListener(el, typ, func(*dom.Event) { calls++ })

			Fire.Event(name, el)
			if calls != 1 {
				t.Errorf("listener for %q called %d times, want 1", typ, calls)
			}
		})
	}
}

func TestFireHelpers(t *testing.T) {
	tests := []struct {
		typ  string
		fire func(*html.Node, ...EventOption) bool
	}{
		{"click", Fire.Click},
		{"dblclick", Fire.DblClick},
		{"keydown", Fire.KeyDown},
		{"input", Fire.Input},
		{"change", Fire.Change},
		{"submit", Fire.Submit},
		{"focus", Fire.Focus},
		{"blur", Fire.Blur},
		{"copy", Fire.Copy},
		{"compositionend", Fire.CompositionEnd},
		{"select", Fire.Select},
		{"touchstart", Fire.TouchStart},
		{"scroll", Fire.Scroll},
		{"wheel", Fire.Wheel},
		{"play", Fire.Play},
		{"load", Fire.Load},
		{"error", Fire.Error},
		{"animationstart", Fire.AnimationStart},
		{"transitionend", Fire.TransitionEnd},
		{"pointerdown", Fire.PointerDown},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			el := dom.CreateElement("div")
			var got *dom.Event
			dom.AddEventListener(el, tt.typ, func(e *dom.Event) { got = e })

			tt.fire(el)
			if got == nil {
				t.Fatal("listener not called")
			}
			if got.Type != tt.typ || got.Target != el {
				t.Errorf("event = %s on %v", got.Type, got.Target)
			}
		})
	}
}

func TestFireBubbling(t *testing.T) {
	parent := dom.CreateElement("div")
	child := dom.AppendChild(parent, dom.CreateElement("input"))

	var seen []string
	for _, typ := range []string{"click", "focus", "focusin", "scroll"} {
		typ := typ
		dom.AddEventListener(parent, typ, func(*dom.Event) { seen = append(seen, typ) })
	}

	Fire.Click(child)
	Fire.Focus(child)
	Fire.FocusIn(child)
	Fire.Scroll(child)

	want := []string{"click", "focusin"}
	if len(seen) != len(want) || seen[0] != want[0] || seen[1] != want[1] {
		t.Errorf("parent saw %v, want %v", seen, want)
	}
}

func TestFireOptions(t *testing.T) {
	input := dom.CreateElement("input")
	var value, key string
	var code int
	dom.AddEventListener(input, "input", func(e *dom.Event) { value = dom.Value(e.Target) })
	dom.AddEventListener(input, "keydown", func(e *dom.Event) { key, code = e.Key, e.KeyCode })

	Fire.Input(input, TargetValue("hello"))
	if value != "hello" {
		t.Errorf("value seen by listener = %q, want hello", value)
	}

	Fire.KeyDown(input, Key("Enter"), KeyCode(13))
	if key != "Enter" || code != 13 {
		t.Errorf("key = %q/%d, want Enter/13", key, code)
	}

	checkbox := dom.CreateElement("input")
	Fire.Click(checkbox, TargetChecked(true))
	if !dom.Checked(checkbox) {
		t.Error("TargetChecked should check the input")
	}

	var bubbles bool
	dom.AddEventListener(input, "change", func(e *dom.Event) { bubbles = e.Bubbles })
	Fire.Change(input, Bubbles(false))
	if bubbles {
		t.Error("Bubbles(false) should override the default")
	}
}

func TestFirePreventDefault(t *testing.T) {
	link := dom.CreateElement("a")
	dom.AddEventListener(link, "click", func(e *dom.Event) { e.PreventDefault() })

	if Fire.Click(link) {
		t.Error("click should report the canceled default")
	}
	if !Fire.Event("Focus", link) {
		t.Error("an event without listeners is not canceled")
	}
	if !Fire.Click(link, Cancelable(false)) {
		t.Error("PreventDefault has no effect on a non-cancelable event")
	}
}

func TestFireEventDirectly(t *testing.T) {
	el := dom.CreateElement("div")
	calls := 0
	dom.AddEventListener(el, "custom", func(*dom.Event) { calls++ })

	FireEvent(el, dom.NewEvent("custom", dom.EventInit{}))
	Fire.Event("Custom", el)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if FireEvent(nil, dom.NewEvent("custom", dom.EventInit{})) {
		t.Error("FireEvent on nil should report false")
	}
}
