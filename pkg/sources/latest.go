package sources

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExportGlob matches the filenames CoinSnap gives full-collection exports.
const ExportGlob = "CoinSnap-Exported-all*.csv"

// FindLatestExport returns the most recently modified CoinSnap export in
// dir, or an error when no export is there.
func FindLatestExport(dir string) (string, error) {
	candidates, err := filepath.Glob(filepath.Join(dir, ExportGlob))
	if err != nil {
		return "", fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no %s found in %s", ExportGlob, dir)
	}

	latest := ""
	var latestMod int64
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); latest == "" || mod > latestMod {
			latest = candidate
			latestMod = mod
		}
	}
	if latest == "" {
		return "", fmt.Errorf("no readable %s in %s", ExportGlob, dir)
	}
	return latest, nil
}

// DefaultDownloadDir is where CoinSnap exports usually land.
func DefaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
