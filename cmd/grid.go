package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"geohash-kit/geohash"
	"geohash-kit/models"
)

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <hash>",
		Short: "Print the 3x3 block around a cell, north row first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash := normalize(args[0])
			grid, err := geohash.Neighbors(hash)
			if err != nil {
				return err
			}
			return a.emit(cmd, models.Neighbors{Geohash: hash, Grid: grid}, func(w io.Writer) {
				for row := 0; row < 3; row++ {
					fmt.Fprintln(w, strings.Join(grid[row*3:row*3+3], " "))
				}
			})
		},
	}
}

func newParentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parent <hash>",
		Short: "Print the enclosing cell one character shorter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash := normalize(args[0])
			if err := geohash.Validate(hash); err != nil {
				return err
			}
			parent := geohash.Parent(hash)
			return a.emit(cmd, parent, func(w io.Writer) {
				fmt.Fprintln(w, parent)
			})
		},
	}
}

func newChildrenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "children <hash>",
		Short: "Print the 32 cells one character longer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			children, err := geohash.Children(normalize(args[0]))
			if err != nil {
				return err
			}
			return a.emit(cmd, children, func(w io.Writer) {
				fmt.Fprintln(w, strings.Join(children, "\n"))
			})
		},
	}
}

func newPrefixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prefix <hash> <hash>",
		Short: "Print the longest prefix two hashes share",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := geohash.CommonPrefix(normalize(args[0]), normalize(args[1]))
			return a.emit(cmd, prefix, func(w io.Writer) {
				fmt.Fprintln(w, prefix)
			})
		},
	}
}
