package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/config"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/formatter"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/hooks"
)

var gtfsFiles = map[string]string{
	"agency.txt": "agency_id,agency_name,agency_url,agency_timezone\n" +
		"GTT,GTT,https://www.gtt.to.it,Europe/Rome\n",
	"calendar.txt": "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\n" +
		"WK,1,1,1,1,1,0,0,20240101,20241231\n",
	"routes.txt": "route_id,agency_id,route_short_name,route_long_name,route_type\n" +
		"R4,GTT,4,Falchera - Drosso,0\n" +
		"R15,GTT,15,Sassi - Brissogne,0\n",
	"stops.txt": "stop_id,stop_code,stop_name,stop_lat,stop_lon\n" +
		"S1,101,Porta Nuova,45.0621,7.6786\n" +
		"S2,102,Carlo Felice,45.0650,7.6800\n" +
		"S3,103,Castello,45.0710,7.6850\n",
	"trips.txt": "route_id,service_id,trip_id,trip_headsign\n" +
		"R4,WK,T1,Drosso\n" +
		"R4,WK,T2,Drosso\n" +
		"R15,WK,T9,Sassi\n",
	"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
		"T1,08:00:00,08:00:00,S1,1\n" +
		"T1,08:05:00,08:05:00,S2,2\n" +
		"T1,08:10:00,08:10:00,S3,3\n" +
		"T2,09:00:00,09:00:00,S1,1\n" +
		"T2,09:05:00,09:05:00,S2,2\n" +
		"T2,09:10:00,09:10:00,S3,3\n" +
		"T9,10:00:00,10:00:00,S3,1\n" +
		"T9,10:05:00,10:05:00,S1,2\n",
}

const stopsFile = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="45.0621" lon="7.6786"><tag k="gtfs_id" v="S1"/><tag k="ref" v="101"/><tag k="name" v="Porta Nuova"/></node>
  <node id="2" lat="45.0650" lon="7.6800"><tag k="gtfs_id" v="S2"/><tag k="ref" v="102"/><tag k="name" v="Carlo Felice"/></node>
  <node id="3" lat="45.0710" lon="7.6850"><tag k="gtfs_id" v="S3"/><tag k="ref" v="103"/><tag k="name" v="Castello"/></node>
</osm>
`

const relationsFile = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <relation id="9001">
    <member type="node" ref="1" role="stop"/>
    <member type="node" ref="2" role="stop"/>
    <member type="node" ref="3" role="stop"/>
    <tag k="name" v="Tram 4"/><tag k="operator" v="GTT"/>
  </relation>
  <relation id="9002">
    <member type="node" ref="3" role="stop"/>
    <member type="node" ref="2" role="stop"/>
    <member type="node" ref="77" role="stop"/>
    <tag k="name" v="Tram 4 back"/><tag k="operator" v="Someone else"/>
  </relation>
</osm>
`

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
}

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	base := t.TempDir()
	cfg := &config.AppConfig{
		GTFSPath:     filepath.Join(base, "gtfs"),
		OSMPath:      filepath.Join(base, "osm"),
		OutputPath:   filepath.Join(base, "out"),
		OsmosisPath:  filepath.Join(base, "osmosis"),
		Operator:     "GTT",
		Network:      "Torino",
		RevisitedKey: "gtfs:revisited",
	}
	writeFiles(t, cfg.GTFSPath, gtfsFiles)
	writeFiles(t, cfg.OSMPath, map[string]string{
		config.OSMStopsFileName:     stopsFile,
		config.OSMRelationsFileName: relationsFile,
	})
	require.NoError(t, os.MkdirAll(cfg.OutputPath, 0o755))
	require.NoError(t, os.MkdirAll(cfg.OsmosisPath, 0o755))
	return cfg
}

func TestRunDiff(t *testing.T) {
	cfg := testConfig(t)
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	require.NoError(t, runDiff(context.Background(), cfg, &out, logger, runOptions{writeJSON: true}))

	report := out.String()
	assert.Contains(t, report, "Relation 9001 (Tram 4) matched in GTFS\n")
	assert.Contains(t, report, "Relation 9002 (Tram 4 back) NOT matched in GTFS\n")
	assert.Contains(t, report, "Best match (2): id: T1 4 Drosso\n")
	assert.Contains(t, report, "Relation in OSM matched in GTFS: 1\n")
	assert.Contains(t, report, "Relation in OSM not matched in GTFS: 1\n")
	assert.Contains(t, report, "Trips in GTFS not matched in OSM: 1\n")

	data, err := os.ReadFile(filepath.Join(cfg.OutputPath, formatter.JSONReportFileName))
	require.NoError(t, err)
	var rep formatter.Report
	require.NoError(t, json.Unmarshal(data, &rep))
	require.Len(t, rep.UnmatchedTrips, 1)
	assert.Equal(t, "T9", rep.UnmatchedTrips[0].TripID)

	assert.Contains(t, logs.String(), `"type":"relation_member_not_stop"`)
	assert.Contains(t, logs.String(), `"type":"relation_tag_mismatch"`)
	assert.Contains(t, logs.String(), `"type":"trip_not_in_osm"`)
}

// nearMissStops moves the ref 101 node ~200 m away from S1 and drops its gtfs_id.
const nearMissStops = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="45.0639" lon="7.6786"><tag k="ref" v="101"/><tag k="name" v="Porta Nuova"/></node>
  <node id="2" lat="45.0650" lon="7.6800"><tag k="gtfs_id" v="S2"/><tag k="ref" v="102"/><tag k="name" v="Carlo Felice"/></node>
  <node id="3" lat="45.0710" lon="7.6850"><tag k="gtfs_id" v="S3"/><tag k="ref" v="103"/><tag k="name" v="Castello"/></node>
</osm>
`

func TestRunDiff_ExcludedRoutesSkipPairing(t *testing.T) {
	tests := []struct {
		name         string
		plugin       config.PluginConfig
		wantNearMiss bool
	}{
		{
			name:         "all routes valid",
			plugin:       config.PluginConfig{Name: "default"},
			wantNearMiss: true,
		},
		{
			name:         "every route excluded",
			plugin:       config.PluginConfig{Name: "configured", ExcludeRoutes: []string{"R4", "R15"}},
			wantNearMiss: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Plugin = tt.plugin
			writeFiles(t, cfg.OSMPath, map[string]string{config.OSMStopsFileName: nearMissStops})

			var out, logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, nil))
			require.NoError(t, runDiff(context.Background(), cfg, &out, logger, runOptions{}))

			assert.Equal(t, tt.wantNearMiss, strings.Contains(logs.String(), `"type":"stop_near_miss"`))
			assert.Equal(t, tt.wantNearMiss, strings.Contains(logs.String(), `"type":"stop_not_in_osm"`))
		})
	}
}

func TestRunDiff_Errors(t *testing.T) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("unknown plugin", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Plugin.Name = "nope"
		var out bytes.Buffer
		err := runDiff(context.Background(), cfg, &out, discard, runOptions{})
		assert.ErrorIs(t, err, hooks.ErrUnknownPlugin)
		assert.Empty(t, out.String())
	})

	t.Run("missing osm stops", func(t *testing.T) {
		cfg := testConfig(t)
		require.NoError(t, os.Remove(cfg.OSMStopsPath()))
		var out bytes.Buffer
		assert.Error(t, runDiff(context.Background(), cfg, &out, discard, runOptions{}))
		assert.Empty(t, out.String())
	})

	t.Run("cancelled", func(t *testing.T) {
		cfg := testConfig(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var out bytes.Buffer
		assert.Error(t, runDiff(ctx, cfg, &out, discard, runOptions{}))
		assert.Empty(t, out.String())
	})
}

func TestPluginsCommand(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"plugins"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "configured\ndefault\n", out.String())
}

func TestRootCommand_BadConfig(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yml")})
	assert.Error(t, cmd.Execute())
}
