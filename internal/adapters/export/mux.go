package export

import (
	"context"
	"errors"
	"io"
	"strings"
)

// ErrS3Disabled is returned for s3:// destinations when no S3 sink is
// configured.
var ErrS3Disabled = errors.New("s3 destinations are not configured")

// Mux routes each Save to the S3 sink for s3:// destinations and to the
// local directory sink otherwise.
type Mux struct {
	Dir DirSink
	S3  *S3Sink
}

// Save implements ports.ExportSink.
func (m *Mux) Save(ctx context.Context, dest, name string, r io.Reader) (string, int64, error) {
	if strings.HasPrefix(dest, S3Scheme) {
		if m.S3 == nil {
			return "", 0, ErrS3Disabled
		}
		return m.S3.Save(ctx, dest, name, r)
	}
	return m.Dir.Save(ctx, dest, name, r)
}
