package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-clux/clux"
)

func newPointerCmd(cfg *settings) *cobra.Command {
	var patchPath string
	cmd := &cobra.Command{
		Use:   "pointer <file> <path>",
		Short: "resolve an RFC 6901 JSON pointer against a document and print the node it names",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := clux.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			if patchPath != "" {
				source, err := clux.ParseFile(patchPath)
				if err != nil {
					return fmt.Errorf("parsing patch source %s: %w", patchPath, err)
				}
				target := clux.Pointer(root, args[1])
				if target == nil {
					return fmt.Errorf("pointer %q does not resolve in %s", args[1], args[0])
				}
				clux.Patch(target, source)
				return clux.Write(root, cmd.OutOrStdout(), cfg.Indent)
			}

			target := clux.Pointer(root, args[1])
			if target == nil {
				return fmt.Errorf("pointer %q does not resolve in %s", args[1], args[0])
			}
			return clux.Write(target, cmd.OutOrStdout(), cfg.Indent)
		},
	}
	cmd.Flags().StringVar(&patchPath, "patch", "", "merge this document into the pointed-at node in place (json_patch semantics)")
	return cmd
}
