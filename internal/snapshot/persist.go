package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"gtmdiff/internal/entity"
)

// Save writes a snapshot to path as gzip-compressed JSON, so a container
// state can be captured now and diffed against another capture later.
func Save(path string, snap Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()

	zw := gzip.NewWriter(f)
	if err := json.NewEncoder(zw).Encode(snap); err != nil {
		zw.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot previously written by Save.
func Load(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot file: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}
	defer zr.Close()

	var raw map[string]map[string]interface{}
	if err := json.NewDecoder(zr).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	snap := make(Snapshot, len(raw))
	for category, entities := range raw {
		m := make(EntityMap, len(entities))
		for key, tree := range entities {
			m[key] = entity.FromAny(tree)
		}
		snap[Category(category)] = m
	}
	return snap, nil
}

// ToYAML renders a snapshot as YAML for human review.
func ToYAML(snap Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot yaml: %w", err)
	}
	return data, nil
}
