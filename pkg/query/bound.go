package query

import (
	"github.com/vango-dev/vtl/internal/errors"
	"github.com/vango-dev/vtl/pkg/dom"
	"golang.org/x/net/html"
)

// BoundQueries runs queries against a fixed container.
type BoundQueries struct {
	container *html.Node
	queries   map[string]Query
}

// GetQueriesForElement binds the default queries, plus any custom ones,
// to container. Custom queries with a default name replace it.
func GetQueriesForElement(container *html.Node, custom ...map[string]Query) *BoundQueries {
	queries := make(map[string]Query, len(DefaultQueries))
	for name, q := range DefaultQueries {
		queries[name] = q
	}
	for _, set := range custom {
		for name, q := range set {
			queries[name] = q
		}
	}
	return &BoundQueries{container: container, queries: queries}
}

// Within is GetQueriesForElement without custom queries.
func Within(container *html.Node) *BoundQueries {
	return GetQueriesForElement(container)
}

// Screen binds the default queries to the body of the default document.
func Screen() *BoundQueries {
	return GetQueriesForElement(dom.Default().Body())
}

// Container returns the element the queries are bound to.
func (b *BoundQueries) Container() *html.Node {
	return b.container
}

// Debug returns the pretty printed container.
func (b *BoundQueries) Debug(maxLength int, opts ...PrettyOption) string {
	return PrettyDOM(b.container, maxLength, opts...)
}

func (b *BoundQueries) lookup(name string) (Query, error) {
	q, ok := b.queries[name]
	if !ok {
		return nil, errors.New("Q004").
			WithMessagef("Unknown query %q", name)
	}
	return q, nil
}

// Get runs the named query as GetBy.
func (b *BoundQueries) Get(name string, m Matcher, opts ...Option) (*html.Node, error) {
	q, err := b.lookup(name)
	if err != nil {
		return nil, err
	}
	return GetBy(q, b.container, m, opts...)
}

// GetAll runs the named query as GetAllBy.
func (b *BoundQueries) GetAll(name string, m Matcher, opts ...Option) ([]*html.Node, error) {
	q, err := b.lookup(name)
	if err != nil {
		return nil, err
	}
	return GetAllBy(q, b.container, m, opts...)
}

// Query runs the named query as QueryBy.
func (b *BoundQueries) Query(name string, m Matcher, opts ...Option) (*html.Node, error) {
	q, err := b.lookup(name)
	if err != nil {
		return nil, err
	}
	return QueryBy(q, b.container, m, opts...)
}

// QueryAll runs the named query as QueryAllBy.
func (b *BoundQueries) QueryAll(name string, m Matcher, opts ...Option) ([]*html.Node, error) {
	q, err := b.lookup(name)
	if err != nil {
		return nil, err
	}
	return QueryAllBy(q, b.container, m, opts...)
}

// Find runs the named query as FindBy.
func (b *BoundQueries) Find(name string, m Matcher, opts ...Option) (*html.Node, error) {
	q, err := b.lookup(name)
	if err != nil {
		return nil, err
	}
	return FindBy(q, b.container, m, opts...)
}

// FindAll runs the named query as FindAllBy.
func (b *BoundQueries) FindAll(name string, m Matcher, opts ...Option) ([]*html.Node, error) {
	q, err := b.lookup(name)
	if err != nil {
		return nil, err
	}
	return FindAllBy(q, b.container, m, opts...)
}

// Text queries

func (b *BoundQueries) GetByText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Get("Text", m, opts...)
}

func (b *BoundQueries) GetAllByText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.GetAll("Text", m, opts...)
}

func (b *BoundQueries) QueryByText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Query("Text", m, opts...)
}

func (b *BoundQueries) QueryAllByText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.QueryAll("Text", m, opts...)
}

func (b *BoundQueries) FindByText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Find("Text", m, opts...)
}

func (b *BoundQueries) FindAllByText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.FindAll("Text", m, opts...)
}

// Role queries

func (b *BoundQueries) GetByRole(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Get("Role", m, opts...)
}

func (b *BoundQueries) GetAllByRole(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.GetAll("Role", m, opts...)
}

func (b *BoundQueries) QueryByRole(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Query("Role", m, opts...)
}

func (b *BoundQueries) QueryAllByRole(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.QueryAll("Role", m, opts...)
}

func (b *BoundQueries) FindByRole(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Find("Role", m, opts...)
}

func (b *BoundQueries) FindAllByRole(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.FindAll("Role", m, opts...)
}

// TestId queries

func (b *BoundQueries) GetByTestId(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Get("TestId", m, opts...)
}

func (b *BoundQueries) GetAllByTestId(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.GetAll("TestId", m, opts...)
}

func (b *BoundQueries) QueryByTestId(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Query("TestId", m, opts...)
}

func (b *BoundQueries) QueryAllByTestId(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.QueryAll("TestId", m, opts...)
}

func (b *BoundQueries) FindByTestId(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Find("TestId", m, opts...)
}

func (b *BoundQueries) FindAllByTestId(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.FindAll("TestId", m, opts...)
}

// LabelText queries

func (b *BoundQueries) GetByLabelText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Get("LabelText", m, opts...)
}

func (b *BoundQueries) GetAllByLabelText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.GetAll("LabelText", m, opts...)
}

func (b *BoundQueries) QueryByLabelText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Query("LabelText", m, opts...)
}

func (b *BoundQueries) QueryAllByLabelText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.QueryAll("LabelText", m, opts...)
}

func (b *BoundQueries) FindByLabelText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Find("LabelText", m, opts...)
}

func (b *BoundQueries) FindAllByLabelText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.FindAll("LabelText", m, opts...)
}

// PlaceholderText queries

func (b *BoundQueries) GetByPlaceholderText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Get("PlaceholderText", m, opts...)
}

func (b *BoundQueries) GetAllByPlaceholderText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.GetAll("PlaceholderText", m, opts...)
}

func (b *BoundQueries) QueryByPlaceholderText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Query("PlaceholderText", m, opts...)
}

func (b *BoundQueries) QueryAllByPlaceholderText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.QueryAll("PlaceholderText", m, opts...)
}

func (b *BoundQueries) FindByPlaceholderText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Find("PlaceholderText", m, opts...)
}

func (b *BoundQueries) FindAllByPlaceholderText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.FindAll("PlaceholderText", m, opts...)
}

// AltText queries

func (b *BoundQueries) GetByAltText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Get("AltText", m, opts...)
}

func (b *BoundQueries) GetAllByAltText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.GetAll("AltText", m, opts...)
}

func (b *BoundQueries) QueryByAltText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Query("AltText", m, opts...)
}

func (b *BoundQueries) QueryAllByAltText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.QueryAll("AltText", m, opts...)
}

func (b *BoundQueries) FindByAltText(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Find("AltText", m, opts...)
}

func (b *BoundQueries) FindAllByAltText(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.FindAll("AltText", m, opts...)
}

// Title queries

func (b *BoundQueries) GetByTitle(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Get("Title", m, opts...)
}

func (b *BoundQueries) GetAllByTitle(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.GetAll("Title", m, opts...)
}

func (b *BoundQueries) QueryByTitle(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Query("Title", m, opts...)
}

func (b *BoundQueries) QueryAllByTitle(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.QueryAll("Title", m, opts...)
}

func (b *BoundQueries) FindByTitle(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Find("Title", m, opts...)
}

func (b *BoundQueries) FindAllByTitle(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.FindAll("Title", m, opts...)
}

// DisplayValue queries

func (b *BoundQueries) GetByDisplayValue(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Get("DisplayValue", m, opts...)
}

func (b *BoundQueries) GetAllByDisplayValue(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.GetAll("DisplayValue", m, opts...)
}

func (b *BoundQueries) QueryByDisplayValue(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Query("DisplayValue", m, opts...)
}

func (b *BoundQueries) QueryAllByDisplayValue(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.QueryAll("DisplayValue", m, opts...)
}

func (b *BoundQueries) FindByDisplayValue(m Matcher, opts ...Option) (*html.Node, error) {
	return b.Find("DisplayValue", m, opts...)
}

func (b *BoundQueries) FindAllByDisplayValue(m Matcher, opts ...Option) ([]*html.Node, error) {
	return b.FindAll("DisplayValue", m, opts...)
}
