// Command clux exercises the clux document library and its schema
// validator end to end: formatting, validation, shape queries, and
// pointer resolution, all over the same Node tree the library builds.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/go-clux/clux"
	"github.com/go-clux/clux/schema"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

// settings holds the process-global knobs a --config file or flags may
// override before any subcommand touches the library.
type settings struct {
	Indent   int    `yaml:"indent"`
	Encoding string `yaml:"encoding"`
	MaxDepth int    `yaml:"maxDepth"`
}

func defaultSettings() settings {
	return settings{Indent: 2, Encoding: "utf8", MaxDepth: clux.MaxDepth()}
}

func (s settings) apply() error {
	clux.SetMaxDepth(s.MaxDepth)
	schema.SetMaxDepth(s.MaxDepth)
	switch s.Encoding {
	case "utf8", "":
		clux.SetEncoding(clux.UTF8)
	case "ascii":
		clux.SetEncoding(clux.ASCII)
	default:
		return fmt.Errorf("unknown encoding %q (want utf8 or ascii)", s.Encoding)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	cfg := defaultSettings()
	var configPath string

	root := &cobra.Command{
		Use:           "clux",
		Short:         "clux - parse, validate, and query JSON-equivalent documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				loaded, err := loadConfig(configPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				cfg = *loaded
			}
			return cfg.apply()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to a YAML config file (indent, encoding, maxDepth)")
	flags.IntVar(&cfg.Indent, "indent", cfg.Indent, "serializer indent width (0 for compact output)")
	flags.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "serializer encoding: utf8 or ascii")
	flags.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "parser/validator recursion depth cap")

	root.AddCommand(newFormatCmd(&cfg))
	root.AddCommand(newValidateCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newPointerCmd(&cfg))
	root.AddCommand(newScaffoldCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
