package pool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported pool file format")

// LoadFile reads a snapshot from a .json, .yaml or .yml file.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool file: %w", err)
	}

	var snap Snapshot
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("decode pool json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("decode pool yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := validateSnapshot(&snap); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	snap.LoadedAt = time.Now()
	return &snap, nil
}

// FileSource loads snapshots from a file on every call.
type FileSource struct {
	Path string
}

// Load implements Source.
func (f FileSource) Load(_ context.Context) (*Snapshot, error) {
	return LoadFile(f.Path)
}

func validateSnapshot(s *Snapshot) error {
	seen := make(map[string]struct{}, len(s.Players))
	for i, p := range s.Players {
		if p.ID == "" {
			return fmt.Errorf("players[%d]: id is required", i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("players[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	for i, pk := range s.Picks {
		if _, ok := seen[pk.PlayerID]; !ok {
			return fmt.Errorf("picks[%d]: %w: %s", i, ErrPlayerNotFound, pk.PlayerID)
		}
	}
	return nil
}
