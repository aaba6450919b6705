package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/jsamuelsen11/go-powerbi/internal/adapters/export"
	"github.com/jsamuelsen11/go-powerbi/internal/domain/odata"
)

func addODataFlags(fs *pflag.FlagSet, q *odata.Query) {
	fs.IntVar(&q.Top, "top", 0, "return at most this many entries ($top)")
	fs.IntVar(&q.Skip, "skip", 0, "skip this many entries ($skip)")
	fs.StringVar(&q.Filter, "filter", "", "OData filter condition ($filter)")
	fs.StringVar(&q.Expand, "expand", "", "related entities to expand ($expand)")
}

func addGroupFlag(fs *pflag.FlagSet, groupID *string) {
	fs.StringVarP(groupID, "group", "g", "", `workspace id; empty means "My workspace"`)
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTime accepts RFC 3339, a local-less date-time, or a date, all as UTC.
func parseTime(flag, v string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("--%s: cannot parse %q as a date or RFC 3339 time", flag, v)
}

// splitDest splits a file destination into the directory (or s3 prefix)
// and the file name. A destination that names no file, such as
// s3://bucket/ or ".", is rejected.
func splitDest(flag, file string) (dest, name string, err error) {
	if strings.HasPrefix(file, export.S3Scheme) {
		if i := strings.LastIndex(file, "/"); i >= len(export.S3Scheme) {
			dest, name = file[:i], file[i+1:]
		}
	} else {
		dest, name = filepath.Dir(file), filepath.Base(file)
	}
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return "", "", fmt.Errorf("--%s: %q names no file", flag, file)
	}
	return dest, name, nil
}
