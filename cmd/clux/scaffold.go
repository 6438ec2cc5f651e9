package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/go-clux/clux"
)

func newScaffoldCmd() *cobra.Command {
	var id string
	var typeName string

	cmd := &cobra.Command{
		Use:   "scaffold <path>",
		Short: "write a minimal schema stub with a generated \"$id\", ready for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				generated, err := uuid.NewV7()
				if err != nil {
					return fmt.Errorf("generating $id: %w", err)
				}
				id = generated.String()
			}

			root := clux.NewObject()
			if err := addProperty(root, "$id", clux.NewString(id)); err != nil {
				return err
			}
			if typeName != "" {
				if err := addProperty(root, "type", clux.NewString(typeName)); err != nil {
					return err
				}
			}

			if err := root.WriteFile(args[0], 2); err != nil {
				return fmt.Errorf("writing %s: %w", args[0], err)
			}
			logger.Info("scaffolded schema", "path", args[0], "id", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "schema $id to stamp (default: a generated UUIDv7)")
	cmd.Flags().StringVar(&typeName, "type", "", "optional top-level \"type\" constraint to seed")
	return cmd
}

// addProperty names value with key and appends it to parent, an Object
// under construction.
func addProperty(parent *clux.Node, key string, value *clux.Node) error {
	clux.SetKey(value, key)
	return clux.PushBack(parent, value)
}
