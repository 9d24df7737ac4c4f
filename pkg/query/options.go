package query

import (
	"context"
	"time"
)

// Options are the resolved settings of a single query call.
type Options struct {
	// Exact requires a full, case-sensitive match for string matchers.
	Exact bool

	// Normalizer is applied to text before matching.
	Normalizer Normalizer

	// Selector restricts matches to elements matching it.
	Selector string

	// Ignore excludes elements from text queries. Empty ignores nothing.
	Ignore string

	// Name filters role queries by accessible name.
	Name Matcher

	// Hidden includes inaccessible elements in role queries.
	Hidden bool

	// Timeout and Interval control Find* polling.
	Timeout  time.Duration
	Interval time.Duration

	// Context cancels Find* polling.
	Context context.Context
}

// Option configures a query call.
type Option func(*Options)

// Exact sets whether string matchers must match the whole text.
// Exact(false) matches case-insensitive substrings.
func Exact(exact bool) Option {
	return func(o *Options) { o.Exact = exact }
}

// WithNormalizer replaces the default text normalizer.
func WithNormalizer(n Normalizer) Option {
	return func(o *Options) { o.Normalizer = n }
}

// Selector only keeps elements matching the CSS selector.
func Selector(sel string) Option {
	return func(o *Options) { o.Selector = sel }
}

// Ignore skips elements matching the CSS selector in text queries.
func Ignore(sel string) Option {
	return func(o *Options) { o.Ignore = sel }
}

// Name filters role queries by accessible name.
func Name(m Matcher) Option {
	return func(o *Options) { o.Name = m }
}

// Hidden includes elements excluded from the accessibility tree.
func Hidden(hidden bool) Option {
	return func(o *Options) { o.Hidden = hidden }
}

// Timeout bounds Find* queries and WaitFor.
func Timeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// Interval sets the polling interval of Find* queries and WaitFor.
func Interval(d time.Duration) Option {
	return func(o *Options) { o.Interval = d }
}

// WithContext cancels Find* polling when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) { o.Context = ctx }
}

func newOptions(opts []Option) *Options {
	cfg := GetConfig()
	o := &Options{
		Exact:    true,
		Selector: "*",
		Ignore:   cfg.DefaultIgnore,
		Hidden:   cfg.DefaultHidden,
		Timeout:  cfg.AsyncUtilTimeout,
		Interval: cfg.AsyncInterval,
		Context:  context.Background(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.Normalizer == nil {
		o.Normalizer = DefaultNormalizer(true, true)
	}
	if o.Selector == "" {
		o.Selector = "*"
	}
	return o
}
