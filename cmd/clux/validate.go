package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-clux/clux"
	"github.com/go-clux/clux/schema"
)

func newValidateCmd() *cobra.Command {
	var refs []string
	var locale string

	cmd := &cobra.Command{
		Use:   "validate <document> <schema>",
		Short: "validate a document against a schema, reporting every warning, violation, and schema error",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			document, err := clux.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parsing document %s: %w", args[0], err)
			}
			schemaRoot, err := clux.ParseFile(args[1])
			if err != nil {
				return fmt.Errorf("parsing schema %s: %w", args[1], err)
			}

			reg, err := buildRegistry(schemaRoot, refs)
			if err != nil {
				return err
			}

			failures := 0
			ok := schema.Validate(document, schemaRoot, reg, func(e schema.Event) bool {
				failures++
				printEvent(cmd, e, locale)
				return true
			})
			if ok {
				logger.Info("document is valid")
				return nil
			}
			return fmt.Errorf("document failed validation (%d events reported)", failures)
		},
	}

	cmd.Flags().StringArrayVar(&refs, "ref", nil, "additional schema to register as id=path, resolvable via $ref")
	cmd.Flags().StringVar(&locale, "locale", "en", "locale for rendered event messages (en, es)")
	return cmd
}

// buildRegistry registers schemaRoot under its own "$id" (if any) plus
// every --ref id=path entry, so "$ref" can resolve across documents.
func buildRegistry(schemaRoot *clux.Node, refs []string) (*schema.Map, error) {
	reg := schema.NewMap()
	if id := schemaRoot.Find("$id"); id != nil && id.IsString() {
		if err := reg.Register(id.StringValue(), schemaRoot); err != nil {
			return nil, err
		}
	}
	for _, entry := range refs {
		id, path, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("--ref must be id=path, got %q", entry)
		}
		root, err := clux.ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("parsing --ref %s: %w", path, err)
		}
		if err := reg.Register(id, root); err != nil {
			return nil, fmt.Errorf("registering --ref %s: %w", id, err)
		}
	}
	return reg, nil
}

func printEvent(cmd *cobra.Command, e schema.Event, locale string) {
	msg := schema.Message(e, locale)
	line := fmt.Sprintf("%-7s %-20s %s", e.Kind, e.Path, msg)
	switch e.Kind {
	case schema.Warning:
		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString(line))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), color.RedString(line))
	}
}
