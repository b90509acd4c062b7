package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/asciiflap/internal/storage"
)

// DefaultScreenshotDir is where ctrl+s writes frames.
const DefaultScreenshotDir = "~/.asciiflap/screenshots"

// WriteScreenshot stores a text frame as <dir>/<game>_<timestamp>.txt and
// returns the file path.
func WriteScreenshot(dir, gameID string, frame []byte, now time.Time) (string, error) {
	dir, err := storage.ExpandHome(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", gameID, now.Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, frame, 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}
