package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"geohash-kit/config"
	"geohash-kit/logging"
)

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	cfgFile string
	output  string
	verbose bool

	cfg *config.Config
	log *logrus.Logger
}

// NewRootCmd returns the root command of the geohash CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "geohash",
		Short: "Encode, decode and navigate geohash cells",
		Long: `geohash encodes coordinates to geohash strings and answers grid questions
about a hash: neighbors, parent, children, bounding box and area.

Negative coordinates must follow "--", for example:
  geohash encode -- -122.4194 37.7749`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.output, "output", "", "output format: json|text (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newEncodeCmd(a))
	rootCmd.AddCommand(newDecodeCmd(a))
	rootCmd.AddCommand(newNeighborsCmd(a))
	rootCmd.AddCommand(newParentCmd(a))
	rootCmd.AddCommand(newChildrenCmd(a))
	rootCmd.AddCommand(newPrefixCmd(a))
	rootCmd.AddCommand(newCoverCmd(a))
	rootCmd.AddCommand(newBBoxCmd(a))
	rootCmd.AddCommand(newAreaCmd(a))
	rootCmd.AddCommand(newGeoJSONCmd(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output.Format = a.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	logger, err := logging.NewLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	a.cfg = cfg
	a.log = logger
	a.log.WithFields(logging.Fields{
		"command":   cmd.Name(),
		"precision": cfg.Geohash.Precision,
		"output":    cfg.Output.Format,
	}).Debug("config loaded")
	return nil
}

// emit writes v as indented JSON, or calls text when the output is text.
func (a *app) emit(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if a.cfg.Output.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

// precision returns the --precision flag when set, the configured default
// otherwise.
func (a *app) precision(cmd *cobra.Command) int {
	if f := cmd.Flags().Lookup("precision"); f != nil && f.Changed {
		p, _ := cmd.Flags().GetInt("precision")
		return p
	}
	return a.cfg.Geohash.Precision
}

func parseLonLat(args []string) (lon, lat float64, err error) {
	lon, err = strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", args[0], err)
	}
	lat, err = strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", args[1], err)
	}
	return lon, lat, nil
}

// normalize lowercases hashes typed by hand; the library only accepts the
// canonical lowercase form.
func normalize(hash string) string {
	return strings.ToLower(strings.TrimSpace(hash))
}
