package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"geohash-kit/geohash"
	"geohash-kit/matching"
	"geohash-kit/models"
)

func newEncodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <lon> <lat>",
		Short: "Encode a longitude/latitude pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lon, lat, err := parseLonLat(args)
			if err != nil {
				return err
			}
			p := a.precision(cmd)
			hash, err := geohash.Encode(lon, lat, p)
			if err != nil {
				return err
			}
			a.log.WithField("geohash", hash).Debug("encoded")
			loc := models.Location{Longitude: lon, Latitude: lat, Geohash: hash, Precision: p}
			return a.emit(cmd, loc, func(w io.Writer) {
				fmt.Fprintln(w, hash)
			})
		},
	}
	cmd.Flags().IntP("precision", "p", geohash.DefaultPrecision, "number of geohash characters")
	return cmd
}

func newCoverCmd(a *app) *cobra.Command {
	var until string
	cmd := &cobra.Command{
		Use:   "cover <lon> <lat>",
		Short: "List the distinct cells of the 3x3 block around a point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lon, lat, err := parseLonLat(args)
			if err != nil {
				return err
			}
			p := a.precision(cmd)
			var keys []string
			if until == "" {
				keys, err = matching.Cover(lon, lat, p)
			} else {
				target := normalize(until)
				if err := geohash.Validate(target); err != nil {
					return err
				}
				keys, err = matching.Probe(lon, lat, p, p, func(keys []string) bool {
					a.log.WithField("precision", len(keys[0])).Debug("probing")
					return matching.Covers(keys, target)
				})
			}
			if err != nil {
				return err
			}
			if len(keys) < 9 {
				a.log.WithField("cells", len(keys)).Debug("block collapsed at a pole")
			}
			return a.emit(cmd, keys, func(w io.Writer) {
				fmt.Fprintln(w, strings.Join(keys, "\n"))
			})
		},
	}
	cmd.Flags().IntP("precision", "p", geohash.DefaultPrecision, "number of geohash characters")
	cmd.Flags().StringVar(&until, "until", "", "widen the cover one character at a time until it contains this hash")
	return cmd
}
