package query

import (
	"regexp"
	"testing"

	"github.com/vango-dev/vtl/pkg/dom"
)

func TestRoleQuery(t *testing.T) {
	c := container(t, `
		<button>Save</button>
		<a href="/x">Docs</a>
		<a>No href</a>
		<h2>Title</h2>
		<input type="checkbox" aria-label="Agree">
		<label for="n">Name</label><input id="n">
		<div role="button">Div button</div>
		<ul><li>a</li></ul>
		<button hidden>Hidden</button>
		<div aria-hidden="true"><button>Ghost</button></div>
		<div style="display: none"><button>Gone</button></div>
	`)

	tests := []struct {
		name string
		role string
		opts []Option
		want int
	}{
		{"buttons", "button", nil, 2},
		{"buttons including hidden", "button", []Option{Hidden(true)}, 5},
		{"by name", "button", []Option{Name("Save")}, 1},
		{"by name regexp", "button", []Option{Name(regexp.MustCompile(`^Div`))}, 1},
		{"link needs href", "link", nil, 1},
		{"heading", "heading", nil, 1},
		{"checkbox by aria-label", "checkbox", []Option{Name("Agree")}, 1},
		{"textbox by label", "textbox", []Option{Name("Name")}, 1},
		{"list", "list", nil, 1},
		{"listitem", "listitem", nil, 1},
		{"case insensitive role", "BUTTON", nil, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			els, err := QueryAllBy(Role, c, tt.role, tt.opts...)
			if err != nil {
				t.Fatalf("QueryAllBy: %v", err)
			}
			if len(els) != tt.want {
				t.Errorf("got %d elements, want %d", len(els), tt.want)
			}
		})
	}
}

func TestImplicitRole(t *testing.T) {
	tests := []struct {
		markup string
		want   string
	}{
		{`<button></button>`, "button"},
		{`<a href="#"></a>`, "link"},
		{`<a></a>`, ""},
		{`<input>`, "textbox"},
		{`<input type="submit">`, "button"},
		{`<input type="radio">`, "radio"},
		{`<input type="range">`, "slider"},
		{`<input type="password">`, ""},
		{`<select></select>`, "combobox"},
		{`<select multiple></select>`, "listbox"},
		{`<textarea></textarea>`, "textbox"},
		{`<img alt="x">`, "img"},
		{`<img alt="">`, "presentation"},
		{`<nav></nav>`, "navigation"},
		{`<header></header>`, "banner"},
		{`<section></section>`, ""},
		{`<section aria-label="x"></section>`, "region"},
		{`<h3></h3>`, "heading"},
		{`<progress></progress>`, "progressbar"},
		{`<span></span>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.markup, func(t *testing.T) {
			el := dom.FirstElementChild(container(t, tt.markup))
			if got := ImplicitRole(el); got != tt.want {
				t.Errorf("ImplicitRole = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderInsideSection(t *testing.T) {
	c := container(t, `<article><header>h</header></article>`)
	header, _ := dom.QuerySelector(c, "header")
	if got := ImplicitRole(header); got != "" {
		t.Errorf("ImplicitRole = %q, want none", got)
	}
}

func TestAccessibleName(t *testing.T) {
	tests := []struct {
		markup string
		want   string
	}{
		{`<button>  Save   changes </button>`, "Save changes"},
		{`<button aria-label="Close">x</button>`, "Close"},
		{`<span id="t">Title</span><div role="dialog" aria-labelledby="t"></div>`, "Title"},
		{`<label for="i">Email</label><input id="i">`, "Email"},
		{`<input type="submit" value="Send">`, "Send"},
		{`<img alt="Logo">`, "Logo"},
		{`<div title="Tip"></div>`, "Tip"},
	}

	for _, tt := range tests {
		t.Run(tt.markup, func(t *testing.T) {
			c := container(t, tt.markup)
			els := dom.Children(c)
			el := els[len(els)-1]
			if got := AccessibleName(el); got != tt.want {
				t.Errorf("AccessibleName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsInaccessible(t *testing.T) {
	c := container(t, `<p id="a">a</p><p hidden id="b">b</p><div aria-hidden="true"><p id="c">c</p></div><p style="visibility:hidden" id="d">d</p>`)
	want := map[string]bool{"a": false, "b": true, "c": true, "d": true}
	for id, hidden := range want {
		el, _ := dom.QuerySelector(c, "#"+id)
		if got := IsInaccessible(el); got != hidden {
			t.Errorf("IsInaccessible(#%s) = %v, want %v", id, got, hidden)
		}
	}
}
