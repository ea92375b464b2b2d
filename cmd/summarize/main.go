// Command summarize prints the dashboard's figures for a data source.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parts-pile/car-sales/analytics"
	"github.com/parts-pile/car-sales/config"
	"github.com/parts-pile/car-sales/dataset"
	"github.com/parts-pile/car-sales/ui"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var source string

	root := &cobra.Command{
		Use:           "summarize",
		Short:         "Summarize a car listings source",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&source, "source", "", "data source (default $CARSALES_DATA_SOURCE or vehicles.csv)")

	load := func() (*dataset.Dataset, error) {
		if source == "" {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			source = cfg.DataSource
		}
		return dataset.Load(source)
	}

	root.AddCommand(
		newBrandsCmd(load),
		newDefaultCmd(load),
		newStatsCmd(load),
	)
	return root
}

type loader func() (*dataset.Dataset, error)

func newBrandsCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List brands and vehicle types",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Brands (%d): %s\n", len(analytics.Brands(ds)), strings.Join(analytics.Brands(ds), ", "))
			fmt.Fprintf(cmd.OutOrStdout(), "Vehicle types: %s\n", strings.Join(analytics.TypeOptions(ds), ", "))
			return nil
		},
	}
}

func newDefaultCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the most common brand",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load()
			if err != nil {
				return err
			}
			brand, ok := analytics.DefaultBrand(ds)
			if !ok {
				return fmt.Errorf("no brands in %s", ds.Source)
			}
			fmt.Fprintln(cmd.OutOrStdout(), brand)
			return nil
		},
	}
}

func newStatsCmd(load loader) *cobra.Command {
	var (
		brand  string
		vtype  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print listing count and medians for a selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := load()
			if err != nil {
				return err
			}

			sel := analytics.Selection{Brand: brand, VehicleType: vtype}.Normalize()
			if sel.Brand == "" {
				initial, ok := analytics.InitialSelection(ds)
				if !ok {
					return fmt.Errorf("no brands in %s", ds.Source)
				}
				sel.Brand = initial.Brand
			}
			if err := sel.Validate(ds); err != nil {
				return err
			}

			res := analytics.Run(ds, sel)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Selection analytics.Selection `json:"selection"`
					Summary   analytics.Summary   `json:"summary"`
				}{res.Selection, res.Summary})
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Brand: %s  Type: %s\n", res.Selection.Brand, res.Selection.VehicleType)
			fmt.Fprintf(w, "Listings: %s\n", ui.FormatCount(res.Summary.ListingCount))
			fmt.Fprintf(w, "Median price: %s\n", ui.FormatPrice(res.Summary.MedianPrice))
			fmt.Fprintf(w, "Median odometer: %s\n", ui.FormatOdometer(res.Summary.MedianOdometer))
			for _, n := range []*analytics.EmptyResultNotice{res.HistogramNotice, res.ScatterNotice} {
				if n != nil {
					fmt.Fprintln(w, n.Message)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "brand to select (default: most common)")
	cmd.Flags().StringVar(&vtype, "type", analytics.AllTypes, "vehicle type to select")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
