package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/config"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/hooks"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/internal"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var skipJSON bool

	rootCmd := &cobra.Command{
		Use:           "gtfsosm-diff",
		Short:         "Compare GTFS trips with OSM route relations",
		Long:          "Reads a GTFS feed and the stops and route relations exported from OSM, matches trips to relations and prints the relations with no matching trip.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			logger, err := internal.InitLogging(cfg.Log)
			if err != nil {
				return err
			}
			return runDiff(cmd.Context(), cfg, cmd.OutOrStdout(), logger, runOptions{writeJSON: !skipJSON})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (default: "+strings.Join(config.DefaultPaths, ", ")+")")
	rootCmd.Flags().BoolVar(&skipJSON, "skip-json", false, "Do not write the JSON report to outputPath")

	rootCmd.AddCommand(newPluginsCommand())
	return rootCmd
}

func newPluginsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the route customization plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range hooks.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
