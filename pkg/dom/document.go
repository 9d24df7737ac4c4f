package dom

import (
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

const blankDocument = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is an HTML document tree.
type Document struct {
	// Node is the root document node.
	Node *html.Node
}

// NewDocument returns an empty document with <html>, <head> and <body>.
func NewDocument() *Document {
	doc, err := html.Parse(strings.NewReader(blankDocument))
	if err != nil {
		// The input is a constant well-formed document.
		panic(err)
	}
	return &Document{Node: doc}
}

// ParseDocument parses r as an HTML document. Fragments are placed in the
// body of an implied document.
func ParseDocument(r io.Reader) (*Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{Node: doc}, nil
}

// DocumentElement returns the <html> element.
func (d *Document) DocumentElement() *html.Node {
	for c := d.Node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// Head returns the <head> element.
func (d *Document) Head() *html.Node {
	return d.child("head")
}

// Body returns the <body> element.
func (d *Document) Body() *html.Node {
	return d.child("body")
}

func (d *Document) child(tag string) *html.Node {
	root := d.DocumentElement()
	if root == nil {
		return nil
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}

var (
	defaultMu  sync.RWMutex
	defaultDoc *Document
)

// Default returns the process-wide document, creating it on first use.
// It plays the role of the browser's global document.
func Default() *Document {
	defaultMu.RLock()
	d := defaultDoc
	defaultMu.RUnlock()
	if d != nil {
		return d
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultDoc == nil {
		defaultDoc = NewDocument()
	}
	return defaultDoc
}

// SetDefault replaces the process-wide document and returns the previous one.
func SetDefault(d *Document) *Document {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	old := defaultDoc
	defaultDoc = d
	return old
}
