// Package utils provides internal utility functions for the gtfs-osm-diff tool.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Ellipsoidal distance calculation
//   - Distance formatting for diagnostics
package utils
