package cli

import (
	"path/filepath"
	"testing"
)

func TestSplitDest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file     string
		wantDest string
		wantName string
		wantErr  bool
	}{
		{"s3://audit/2026/march.xlsx", "s3://audit/2026", "march.xlsx", false},
		{"s3://audit/march.xlsx", "s3://audit", "march.xlsx", false},
		{filepath.Join("out", "march.xlsx"), "out", "march.xlsx", false},
		{"march.xlsx", ".", "march.xlsx", false},
		{"s3://audit", "", "", true},
		{"s3://audit/", "", "", true},
		{".", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		dest, name, err := splitDest("xlsx", tt.file)
		if (err != nil) != tt.wantErr {
			t.Errorf("splitDest(%q) error = %v, wantErr %v", tt.file, err, tt.wantErr)
			continue
		}
		if dest != tt.wantDest || name != tt.wantName {
			t.Errorf("splitDest(%q) = %q, %q, want %q, %q", tt.file, dest, name, tt.wantDest, tt.wantName)
		}
	}
}
