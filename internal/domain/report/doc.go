// Package report defines the Report record, its per-user access entries,
// and the clone request body.
package report
