package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"patternmap-api/internal/models"
	"patternmap-api/internal/navigator"

	"github.com/spf13/cobra"
)

func newBrowseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Step through patterns interactively",
		Long: `Reads one command per line from stdin:

  <index>                 open a pattern (again to close it)
  ArrowLeft | left | p    previous pattern
  ArrowRight | right | n  next pattern
  Escape | close          close the panel
  quit                    leave`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			return browse(cmd.InOrStdin(), cmd.OutOrStdout(), cat.Records())
		},
	}
}

func browse(in io.Reader, out io.Writer, records []models.PatternRecord) error {
	var sel navigator.Selection

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "Escape", "close":
			sel = sel.Close()
		case "left", "p":
			sel = sel.Step(records, navigator.Previous)
		case "right", "n":
			sel = sel.Step(records, navigator.Next)
		default:
			if dir, ok := navigator.DirectionFromKey(input); ok {
				sel = sel.Step(records, dir)
				break
			}
			index, err := strconv.Atoi(input)
			if err != nil || index < 0 || index >= len(records) {
				fmt.Fprintf(out, "unknown command %q\n", input)
				continue
			}
			sel = sel.Select(index)
		}

		if err := render(out, records, sel); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func render(out io.Writer, records []models.PatternRecord, sel navigator.Selection) error {
	if !sel.Active {
		_, err := fmt.Fprintln(out, "(no pattern selected)")
		return err
	}
	rec := records[sel.Index]
	_, err := fmt.Fprintf(out, "[%d/%d] %s (%s) %s\n", sel.Index+1, len(records), rec.Location, rec.SymmetryGroup, rec.FileName)
	return err
}
