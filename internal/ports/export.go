package ports

import (
	"context"
	"io"
)

// ExportSink stores exported report files. dest is a local directory or an
// s3://bucket/prefix URL.
type ExportSink interface {
	// Save writes the contents of r as name inside dest. It returns the
	// location written and the number of bytes stored. A dest that does not
	// exist is an error; Save never creates it.
	Save(ctx context.Context, dest, name string, r io.Reader) (string, int64, error)
}
