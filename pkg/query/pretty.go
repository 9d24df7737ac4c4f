package query

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/net/html"
)

// prettyOptions configure PrettyDOM.
type prettyOptions struct {
	colors *bool
	filter func(*html.Node) bool
}

// PrettyOption configures PrettyDOM.
type PrettyOption func(*prettyOptions)

// WithColors forces highlighting on or off. By default the Colors
// setting decides, and "auto" highlights only when stdout is a terminal.
func WithColors(on bool) PrettyOption {
	return func(o *prettyOptions) { o.colors = &on }
}

// FilterNode replaces the default node filter, which drops comments,
// whitespace-only text, script and style elements.
func FilterNode(fn func(*html.Node) bool) PrettyOption {
	return func(o *prettyOptions) { o.filter = fn }
}

func defaultFilter(n *html.Node) bool {
	switch n.Type {
	case html.CommentNode, html.DoctypeNode:
		return false
	case html.TextNode:
		return strings.TrimSpace(n.Data) != ""
	case html.ElementNode:
		return n.Data != "script" && n.Data != "style"
	}
	return true
}

// palette styles the parts of the printed markup.
type palette struct {
	tag, attr, value, text lipgloss.Style
}

func newPalette(colors bool) palette {
	profile := termenv.Ascii
	if colors {
		profile = termenv.ANSI256
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return palette{
		tag:   r.NewStyle().Foreground(lipgloss.Color("6")),
		attr:  r.NewStyle().Foreground(lipgloss.Color("3")),
		value: r.NewStyle().Foreground(lipgloss.Color("2")),
		text:  r.NewStyle(),
	}
}

// useColors resolves the color setting.
func useColors(o *prettyOptions) bool {
	if o.colors != nil {
		return *o.colors
	}
	switch GetConfig().Colors {
	case "always":
		return true
	case "never":
		return false
	}
	return lipgloss.NewRenderer(os.Stdout).ColorProfile() != termenv.Ascii
}

// PrettyDOM returns the indented markup of n, one attribute per line.
// Output longer than maxLength characters is cut and ends in "...";
// maxLength <= 0 uses the DebugPrintLimit setting.
func PrettyDOM(n *html.Node, maxLength int, opts ...PrettyOption) string {
	if n == nil {
		return ""
	}
	o := &prettyOptions{filter: defaultFilter}
	for _, opt := range opts {
		opt(o)
	}
	if maxLength <= 0 {
		maxLength = GetConfig().DebugPrintLimit
	}

	p := &printer{pal: newPalette(useColors(o)), filter: o.filter}
	if n.Type == html.DocumentNode {
		p.children(n, 0)
	} else {
		p.node(n, 0)
	}
	out := strings.TrimSuffix(p.b.String(), "\n")

	if maxLength > 0 && len(out) > maxLength {
		out = out[:maxLength] + "..."
	}
	return out
}

// LogDOM writes PrettyDOM(n, maxLength) to w.
func LogDOM(w io.Writer, n *html.Node, maxLength int, opts ...PrettyOption) {
	fmt.Fprintln(w, PrettyDOM(n, maxLength, opts...))
}

type printer struct {
	b      strings.Builder
	pal    palette
	filter func(*html.Node) bool
}

func (p *printer) line(depth int, s string) {
	p.b.WriteString(strings.Repeat("  ", depth))
	p.b.WriteString(s)
	p.b.WriteByte('\n')
}

func (p *printer) children(n *html.Node, depth int) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if p.filter(c) {
			p.node(c, depth)
		}
	}
}

func (p *printer) node(n *html.Node, depth int) {
	switch n.Type {
	case html.TextNode:
		for _, l := range strings.Split(strings.TrimSpace(n.Data), "\n") {
			p.line(depth, p.pal.text.Render(strings.TrimSpace(l)))
		}
	case html.CommentNode:
		p.line(depth, p.pal.text.Render("<!--"+n.Data+"-->"))
	case html.ElementNode:
		p.element(n, depth)
	case html.DocumentNode:
		p.children(n, depth)
	}
}

func (p *printer) element(n *html.Node, depth int) {
	hasChildren := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if p.filter(c) {
			hasChildren = true
			break
		}
	}

	open := p.pal.tag.Render("<" + n.Data)
	if len(n.Attr) == 0 {
		if hasChildren {
			p.line(depth, open+p.pal.tag.Render(">"))
		} else {
			p.line(depth, open+p.pal.tag.Render(" />"))
			return
		}
	} else {
		p.line(depth, open)
		for _, a := range n.Attr {
			p.line(depth+1, p.pal.attr.Render(a.Key)+"="+p.pal.value.Render(fmt.Sprintf("%q", a.Val)))
		}
		if hasChildren {
			p.line(depth, p.pal.tag.Render(">"))
		} else {
			p.line(depth, p.pal.tag.Render("/>"))
			return
		}
	}

	p.children(n, depth+1)
	p.line(depth, p.pal.tag.Render("</"+n.Data+">"))
}
