package snapshot

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gtmdiff/internal/entity"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		CategoryTags: {
			"GA4 Config": entity.Mapping{
				"name": entity.Scalar{V: "GA4 Config"},
				"parameter": entity.Sequence{
					entity.Mapping{
						"key":   entity.Scalar{V: "measurementId"},
						"value": entity.Scalar{V: "G-123"},
					},
				},
				"paused": entity.Scalar{V: false},
			},
		},
		CategoryTriggers:  {},
		CategoryVariables: {},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.json.gz")
	snap := sampleSnapshot()

	if err := Save(path, snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(got, snap) {
		t.Errorf("round trip mismatch:\n got %v\nwant %v", got, snap)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json.gz")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoadNotGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for uncompressed input")
	}
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(sampleSnapshot())
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	out := string(data)
	for _, want := range []string{"tags:", "GA4 Config", "measurementId", "G-123"} {
		if !strings.Contains(out, want) {
			t.Errorf("ToYAML() output missing %q:\n%s", want, out)
		}
	}
}
