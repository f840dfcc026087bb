// Package hint gates the one-time first-run tutorial prompt.
package hint

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Flags maps hint version keys to their seen markers.
type Flags map[string]bool

// Load reads hint flags from disk. Missing files return empty flags.
func Load(path string) (Flags, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Flags{}, nil
		}
		return nil, err
	}
	var f Flags
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f == nil {
		f = Flags{}
	}
	return f, nil
}

// Save writes hint flags to disk, creating parent directories as needed.
func Save(path string, f Flags) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
