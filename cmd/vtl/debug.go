package main

import (
	"github.com/spf13/cobra"
	"github.com/vango-dev/vtl"
)

func debugCmd() *cobra.Command {
	var (
		maxLength int
		colors    string
	)

	cmd := &cobra.Command{
		Use:   "debug [file|-]",
		Short: "Pretty-print an HTML document",
		Long: `Print an HTML document or fragment the way Result.Debug does.

Examples:
  vtl debug page.html
  curl -s localhost:3000 | vtl debug --max-length 2000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			doc, err := readDocument(cmd, name)
			if err != nil {
				return err
			}

			vtl.LogDOM(cmd.OutOrStdout(), doc.Node, maxLength, prettyOptions(colors)...)
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxLength, "max-length", "n", 0, "Truncate output to this many characters (0 uses the configured limit)")
	cmd.Flags().StringVar(&colors, "colors", "auto", "Highlight output: auto, always or never")

	return cmd
}

// prettyOptions maps a --colors value to printer options. "auto" defers to
// the configured Colors setting.
func prettyOptions(colors string) []vtl.PrettyOption {
	switch colors {
	case "always":
		return []vtl.PrettyOption{vtl.WithColors(true)}
	case "never":
		return []vtl.PrettyOption{vtl.WithColors(false)}
	}
	return nil
}
