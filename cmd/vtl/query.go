package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vango-dev/vtl"
	"github.com/vango-dev/vtl/internal/errors"
	"golang.org/x/net/html"
)

// queryNames maps --by values to the built-in queries.
var queryNames = map[string]string{
	"text":         "Text",
	"role":         "Role",
	"testid":       "TestId",
	"label":        "LabelText",
	"placeholder":  "PlaceholderText",
	"alt":          "AltText",
	"title":        "Title",
	"displayvalue": "DisplayValue",
}

func queryCmd() *cobra.Command {
	var (
		by     string
		exact  bool
		name   string
		all    bool
		hidden bool
		colors string
	)

	cmd := &cobra.Command{
		Use:   "query <match> [file|-]",
		Short: "Run a query against an HTML document",
		Long: `Find elements in an HTML document with a vtl query and print them.

Without --all the query must match exactly one element.

Examples:
  vtl query --by role button page.html
  vtl query --by role --name Submit button page.html
  vtl query --by text --exact=false --all hello page.html`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := queryNames[strings.ToLower(by)]
			if !ok {
				return errors.New("X001").
					WithMessagef("unknown query %q", by).
					WithSuggestion("Use one of: " + strings.Join(byValues(), ", "))
			}

			file := ""
			if len(args) > 1 {
				file = args[1]
			}
			doc, err := readDocument(cmd, file)
			if err != nil {
				return err
			}

			opts := []vtl.QueryOption{vtl.Exact(exact), vtl.Hidden(hidden)}
			if name != "" {
				opts = append(opts, vtl.Name(name))
			}

			q := vtl.GetQueriesForElement(doc.Body())
			var found []*html.Node
			if all {
				found, err = q.GetAll(key, args[0], opts...)
			} else {
				var el *html.Node
				el, err = q.Get(key, args[0], opts...)
				found = []*html.Node{el}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, el := range found {
				vtl.LogDOM(out, el, 0, prettyOptions(colors)...)
			}
			success(cmd.ErrOrStderr(), "%d element(s) found", len(found))
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "text", fmt.Sprintf("Query to run (%s)", strings.Join(byValues(), ", ")))
	cmd.Flags().BoolVar(&exact, "exact", true, "Match full strings, case-sensitively")
	cmd.Flags().StringVar(&name, "name", "", "Accessible name filter for --by role")
	cmd.Flags().BoolVar(&all, "all", false, "Print every match instead of requiring exactly one")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Include inaccessible elements in role queries")
	cmd.Flags().StringVar(&colors, "colors", "auto", "Highlight output: auto, always or never")

	return cmd
}

func byValues() []string {
	vals := make([]string, 0, len(queryNames))
	for k := range queryNames {
		vals = append(vals, k)
	}
	sort.Strings(vals)
	return vals
}
