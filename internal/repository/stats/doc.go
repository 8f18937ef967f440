// Package stats implements persistence for finished session statistics.
//
// The FileRepository appends stats to a JSON file on disk and exposes a
// Repository interface that the session service depends on.
package stats
