package vtl_test

import (
	"testing"

	"github.com/vango-dev/vtl"
	"github.com/vango-dev/vtl/pkg/dom"
	"github.com/vango-dev/vtl/pkg/vango"
	"github.com/vango-dev/vtl/pkg/vdom"
	"golang.org/x/net/html"
)

func TestFireTriggersListeners(t *testing.T) {
	groups := []struct {
		name    string
		events  []string
		element string
		opts    []vtl.EventOption
	}{
		{"Clipboard", []string{"Copy", "Paste"}, "input", nil},
		{"Composition", []string{"CompositionEnd", "CompositionStart", "CompositionUpdate"}, "input", nil},
		{"Keyboard", []string{"KeyDown", "KeyPress", "KeyUp"}, "input", []vtl.EventOption{vtl.KeyCode(13)}},
		{"Focus", []string{"Focus", "Blur"}, "input", nil},
		{"Form", []string{"Input", "Invalid"}, "input", nil},
		{"Submit", []string{"Submit"}, "form", nil},
		{"Mouse", []string{
			"Click", "ContextMenu", "DblClick", "Drag", "DragEnd", "DragEnter", "DragExit",
			"DragLeave", "DragOver", "DragStart", "Drop", "MouseDown", "MouseEnter",
			"MouseLeave", "MouseMove", "MouseOut", "MouseOver", "MouseUp",
		}, "button", nil},
		{"Selection", []string{"Select"}, "input", nil},
		{"Touch", []string{"TouchCancel", "TouchEnd", "TouchMove", "TouchStart"}, "button", nil},
		{"UI", []string{"Scroll"}, "div", nil},
		{"Wheel", []string{"Wheel"}, "div", nil},
		{"Media", []string{
			"Abort", "CanPlay", "CanPlayThrough", "DurationChange", "Emptied", "Encrypted",
			"Ended", "Error", "LoadedData", "LoadedMetadata", "LoadStart", "Pause", "Play",
			"Playing", "Progress", "RateChange", "Seeked", "Seeking", "Stalled", "Suspend",
			"TimeUpdate", "VolumeChange", "Waiting",
		}, "video", nil},
		{"Image", []string{"Load", "Error"}, "img", nil},
		{"Animation", []string{"AnimationStart", "AnimationEnd", "AnimationIteration"}, "div", nil},
		{"Transition", []string{"TransitionEnd"}, "div", nil},
	}

	for _, g := range groups {
		for _, name := range g.events {
			t.Run(g.name+"/"+name, func(t *testing.T) {
				ref := vango.NewRef[*html.Node](nil)
				vtl.Render(func() any { return vdom.CustomElement(g.element, vdom.Ref(ref)) }, vtl.Options{T: t})

				calls := 0
				typ := vtl.CreateEvent(name, nil).Type
				dom.AddEventListener(ref.Current(), typ, func(*dom.Event) { calls++ })

				vtl.Fire.Event(name, ref.Current(), g.opts...)
				if calls != 1 {
					t.Errorf("%s listener ran %d times, want 1", typ, calls)
				}
			})
		}
	}
}

func TestOnInputReceivesValue(t *testing.T) {
	var values []string
	r := vtl.Render(func() any {
		return vdom.Input(vdom.Type("text"), vdom.OnInput(func(e *dom.Event) {
			values = append(values, dom.Value(e.Target))
		}))
	}, vtl.Options{T: t})

	input := dom.FirstElementChild(r.Container)
	vtl.Fire.Input(input, vtl.TargetValue("a"))

	if len(values) != 1 || values[0] != "a" {
		t.Errorf("handler saw %v, want [a]", values)
	}
}

func TestFireEventDirectly(t *testing.T) {
	var got *dom.Event
	r := vtl.Render(func() any {
		return vdom.Button(vdom.OnClick(func(e *dom.Event) { got = e }))
	}, vtl.Options{T: t})

	button := dom.FirstElementChild(r.Container)
	ev := dom.NewEvent("click", dom.EventInit{Bubbles: true, Cancelable: true})
	vtl.FireEvent(button, ev)

	if got != ev {
		t.Error("handler should receive the dispatched event")
	}
}
