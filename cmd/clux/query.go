package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-clux/clux"
)

func newQueryCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "query <file> <shape>",
		Short: `check a document (or a node inside it) against a shape query, e.g. "array of unique strings"`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := clux.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			target := root
			if at != "" {
				target = clux.Pointer(root, at)
				if target == nil {
					return fmt.Errorf("pointer %q does not resolve in %s", at, args[0])
				}
			}
			if clux.Is(target, args[1]) {
				fmt.Fprintln(cmd.OutOrStdout(), "matches")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "does not match")
			return fmt.Errorf("shape mismatch")
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "JSON pointer selecting the node to query, instead of the document root")
	return cmd
}
