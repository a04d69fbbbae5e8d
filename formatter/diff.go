package formatter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/theoremus-urban-solutions/gtfs-osm-diff/hooks"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/matcher"
	"github.com/theoremus-urban-solutions/gtfs-osm-diff/transit"
)

const separator = "---"

// WriteDiff prints the human-readable routes diff of res to w.
func WriteDiff(w io.Writer, res *matcher.Result, routes map[string]transit.Route, hook hooks.Hook) error {
	return WriteReport(w, BuildReport(res, routes, hook))
}

// WriteReport prints rep in the text layout used by WriteDiff.
func WriteReport(w io.Writer, rep Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, separator)
	for _, r := range rep.Matched {
		fmt.Fprintf(bw, "Relation %s (%s) matched in GTFS\n", r.ID, r.Name)
	}

	for _, r := range rep.Unmatched {
		fmt.Fprintln(bw, separator)
		fmt.Fprintf(bw, "Relation %s (%s) NOT matched in GTFS\n", r.ID, r.Name)
		if r.Best == nil {
			fmt.Fprintln(bw, "Best match: none")
			continue
		}
		fmt.Fprintf(bw, "Best match (%d): id: %s %s %s\n", r.Best.Score, r.Best.TripID, r.Best.RouteShortName, r.Best.TripName)
		fmt.Fprintln(bw, renderStops(r.Stops))
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "Relation in OSM matched in GTFS: %d\n", rep.Summary.Matched)
	fmt.Fprintf(bw, "Relation in OSM not matched in GTFS: %d\n", rep.Summary.Unmatched)
	fmt.Fprintf(bw, "Trips in GTFS not matched in OSM: %d\n", rep.Summary.UnmatchedTrips)
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write diff: %w", err)
	}
	return nil
}

func renderStops(rows []StopRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Stop #", "GTFS", "OSM", "Diff"})
	for _, r := range rows {
		diff := ""
		if r.Differs {
			diff = "*"
		}
		tw.AppendRow(table.Row{strconv.Itoa(r.Position), orDash(r.GTFS), orDash(r.OSM), diff})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignCenter},
	})
	return tw.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
