package errors

// ErrorTemplate is the default category and message behind a code.
type ErrorTemplate struct {
	Category Category
	Message  string
}

// Codes are prefixed by category: Q query, R render, C config, X cli.
var registry = map[string]ErrorTemplate{
	"Q001": {CategoryQuery, "Unable to find element"},
	"Q002": {CategoryQuery, "Found multiple elements"},
	"Q003": {CategoryQuery, "Timed out waiting for condition"},
	"Q004": {CategoryQuery, "Unknown query"},
	"Q005": {CategoryQuery, "Invalid selector"},
	"Q006": {CategoryQuery, "Element is not attached to a container"},

	"R001": {CategoryRender, "Effect test rejected"},
	"R002": {CategoryRender, "Element is already removed"},

	"C001": {CategoryConfig, "Invalid configuration file"},
	"C002": {CategoryConfig, "Invalid configuration value"},

	"X001": {CategoryCLI, "Invalid arguments"},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
