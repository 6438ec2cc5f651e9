package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-clux/clux"
)

func newFormatCmd(cfg *settings) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "format <file>",
		Short: "parse a document and re-serialize it with the configured indent/encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := clux.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			if outPath != "" {
				return root.WriteFile(outPath, cfg.Indent)
			}
			return clux.Write(root, cmd.OutOrStdout(), cfg.Indent)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "write the reformatted document to this file instead of stdout")
	return cmd
}
