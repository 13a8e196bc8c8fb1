package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"geohash-kit/geohash"
	"geohash-kit/models"
)

func newDecodeCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "decode <hash>",
		Short: "Decode a geohash to its center, error or outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := geohash.Decode(normalize(args[0]))
			if err != nil {
				return err
			}
			var text func(w io.Writer)
			switch format {
			case "point":
				text = func(w io.Writer) {
					fmt.Fprintf(w, "%v %v\n", cell.Lon, cell.Lat)
				}
			case "pointerr":
				text = func(w io.Writer) {
					fmt.Fprintf(w, "%v %v %v %v\n", cell.Lon, cell.Lat, cell.LonErr, cell.LatErr)
				}
			case "bbox":
				text = func(w io.Writer) { writeBBox(w, cell.BBox()) }
			case "polygon":
				text = func(w io.Writer) {
					for _, p := range cell.Polygon(true) {
						fmt.Fprintf(w, "%v %v\n", p.Lon, p.Lat)
					}
				}
			default:
				return fmt.Errorf("unknown format %q, want point|pointerr|bbox|polygon", format)
			}
			return a.emit(cmd, models.NewCell(cell, format == "polygon"), text)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "point", "text layout: point|pointerr|bbox|polygon")
	return cmd
}

func newBBoxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bbox <hash>",
		Short: "Print the west, south, east and north edges of a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := geohash.BBoxOf(normalize(args[0]))
			if err != nil {
				return err
			}
			return a.emit(cmd, [4]float64{b.West, b.South, b.East, b.North}, func(w io.Writer) {
				writeBBox(w, b)
			})
		},
	}
}

func newAreaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "area <hash>",
		Short: "Approximate the area of a cell in square meters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash := normalize(args[0])
			m2, err := geohash.AreaMetersSquared(hash)
			if err != nil {
				return err
			}
			return a.emit(cmd, models.Area{Geohash: hash, SquareMeters: m2}, func(w io.Writer) {
				fmt.Fprintf(w, "%.3f\n", m2)
			})
		},
	}
}

func newGeoJSONCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "geojson <hash>...",
		Short: "Write cells as a GeoJSON FeatureCollection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hashes := make([]string, len(args))
			for i, h := range args {
				hashes[i] = normalize(h)
			}
			fc, err := geohash.FeatureCollection(hashes...)
			if err != nil {
				return err
			}
			// GeoJSON is already JSON, so the output format does not apply.
			raw, err := json.Marshal(fc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return err
		},
	}
}

func writeBBox(w io.Writer, b geohash.BBox) {
	fmt.Fprintf(w, "%v %v %v %v\n", b.West, b.South, b.East, b.North)
}
