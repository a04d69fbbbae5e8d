package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/config"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/formatter"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/gtfs"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/hooks"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/matcher"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/osm"
)

type runOptions struct {
	writeJSON bool
}

// runDiff loads both sources, matches them and writes the report to out.
// Nothing is written to out unless every input loaded.
func runDiff(ctx context.Context, cfg *config.AppConfig, out io.Writer, logger *slog.Logger, opts runOptions) error {
	hook, err := hooks.New(cfg.Plugin)
	if err != nil {
		return err
	}
	warnings := matcher.NewWarningAggregator()

	osmStops, err := osm.LoadStops(ctx, cfg.OSMStopsPath())
	if err != nil {
		return err
	}
	relations, err := osm.LoadRelations(ctx, cfg.OSMRelationsPath(), osm.IndexByOSMID(osmStops), func(relationID, nodeID string) {
		warnings.Add(matcher.WarningRelationMemberNotStop, relationID+"/"+nodeID)
		logger.Warn("relation member is not a known stop", slog.String("relation_id", relationID), slog.String("node_id", nodeID))
	})
	if err != nil {
		return err
	}
	logger.Info("osm loaded", slog.Int("stops", len(osmStops)), slog.Int("relations", len(relations)))

	feed, err := gtfs.Load(cfg.GTFSPath)
	if err != nil {
		return err
	}
	logger.Info("gtfs loaded", slog.Int("routes", len(feed.Routes())), slog.Int("trips", len(feed.Trips())))

	if err := ctx.Err(); err != nil {
		return err
	}

	// stops of routes the hook rejects are left out of pairing
	matcher.PairStops(feed.ServedStops(hook.IsValidRoute), osmStops, matcher.PairOptions{
		Hook:           hook,
		NameSimilarity: cfg.Pairing.Similarity(),
		Warnings:       warnings,
		Logger:         logger,
	})
	matcher.CheckRelationTags(relations, cfg.Operator, cfg.Network, warnings, logger)

	res := matcher.New(hook, feed.Routes(), logger, warnings).Run(relations, feed.Trips())
	rep := formatter.BuildReport(res, feed.Routes(), hook)

	if err := formatter.WriteReport(out, rep); err != nil {
		return err
	}
	if opts.writeJSON {
		path, err := formatter.WriteJSONFile(cfg.OutputPath, rep)
		if err != nil {
			return fmt.Errorf("json report: %w", err)
		}
		logger.Info("json report written", slog.String("path", path))
	}

	warnings.LogAll(logger)
	return nil
}
