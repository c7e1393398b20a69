package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/boypt/simple-trackercheck/engine"
)

func TestWriteTrackers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "valid_trackers.txt")
	ranked := engine.RankedResult{
		{URI: "udp://a.example:6969/announce", ResponseTimeMs: 40},
		{URI: "http://b.example/announce", ResponseTimeMs: 120},
	}

	if err := writeTrackers(path, ranked); err != nil {
		t.Fatal(err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "udp://a.example:6969/announce\n\nhttp://b.example/announce\n"
	if string(out) != want {
		t.Errorf("output file = %q, want %q", out, want)
	}
}

func Test_barLen(t *testing.T) {
	tests := []struct {
		name     string
		n, total int
		want     int
	}{
		{"all", 10, 10, 40},
		{"half", 5, 10, 20},
		{"none", 0, 10, 0},
		{"empty total", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := barLen(tt.n, tt.total); got != tt.want {
				t.Errorf("barLen(%d, %d) = %d, want %d", tt.n, tt.total, got, tt.want)
			}
		})
	}
}
