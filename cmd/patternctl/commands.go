package main

import (
	"fmt"
	"strconv"

	"patternmap-api/internal/navigator"
	"patternmap-api/internal/service"

	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every pattern in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), cat.Records())
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Show one pattern by catalog index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			rec, err := service.NewPatternService(cat, nil).Get(cmd.Context(), index)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), rec)
		},
	}
}

func newNextCmd(opts *options) *cobra.Command {
	var direction string

	cmd := &cobra.Command{
		Use:   "next <index>",
		Short: "Step from a pattern to its neighbour, wrapping around",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			dir, err := navigator.ParseDirection(direction)
			if err != nil {
				return err
			}
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			result, err := service.NewPatternService(cat, nil).Navigate(cmd.Context(), index, dir)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "next", "next, prev, 1 or -1")
	return cmd
}

func newMarkersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "markers",
		Short: "Print the pattern markers as GeoJSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}
			fc, err := service.NewPatternService(cat, nil).Markers(cmd.Context())
			if err != nil {
				return err
			}
			body, err := fc.MarshalJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
			return err
		},
	}
}
