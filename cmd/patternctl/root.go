package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"patternmap-api/internal/catalog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type options struct {
	file   string
	output string
}

// newRootCmd builds the patternctl command tree
func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "patternctl",
		Short: "Inspect and browse the pattern catalog",
		Long: `patternctl reads the curated pattern catalog, embedded by default,
and lets you list records, show one, step through them and export markers.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "pattern CSV file to read instead of the embedded catalog")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "json", "output format: json or yaml")

	root.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newNextCmd(opts),
		newMarkersCmd(opts),
		newBrowseCmd(opts),
	)
	return root
}

func (o *options) loadCatalog() (*catalog.Catalog, error) {
	if o.file == "" {
		return catalog.Default(nil), nil
	}

	f, err := os.Open(o.file)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	records, err := catalog.ParseReader(f)
	if err != nil {
		return nil, err
	}
	return catalog.New(records, nil), nil
}

func (o *options) write(w io.Writer, v any) error {
	switch o.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", o.output)
	}
}
