/*
Package matcher assigns scheduled GTFS trips to OSM route relations.

# Overview

A run takes the relations loaded from OSM and the trips of the feed and
splits the relations into matched and not matched:

 1. Trips are grouped by route, shape and stop signature; groups are visited
    in key order.
 2. Inside a group, trips equal to one already seen are dropped.
 3. Trips of routes the hook rejects are ignored entirely.
 4. Every remaining trip is compared against each relation still unmatched.
    A relation with the same stops, or one the hook forces, is the match.
    When several qualify the last one scanned wins and an ambiguous_match
    warning is recorded.
 5. Each comparison also scores the stop affinity, so relations left
    unmatched carry a best-guess trip for the report.

The matcher is greedy: a relation matched early is never reconsidered.

# Stop Pairing

PairStops links feed stops to OSM stops with transit.Resolver. Candidates
come from a ref index and from the surrounding s2 cells, so pairing stays
linear in the number of stops. Paired stops with clearly different names
are reported.

# Warnings

Data-quality problems are logged when they happen and counted by a
WarningAggregator, which logs one summary line per warning type at the end
of the run.
*/
package matcher
