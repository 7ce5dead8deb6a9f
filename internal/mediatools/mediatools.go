// Package mediatools wraps the external image utilities: exiftool for
// metadata stripping, and renaming of DALL·E downloads into slugged
// filenames.
package mediatools

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// DefaultExiftool is the executable looked up on PATH when no explicit
// path is configured.
const DefaultExiftool = "exiftool"

const exiftoolTimeout = 30 * time.Second

// StripMetadata removes all writable metadata from the file in place.
func StripMetadata(ctx context.Context, exiftool, path string) error {
	if exiftool == "" {
		exiftool = DefaultExiftool
	}
	ctx, cancel := context.WithTimeout(ctx, exiftoolTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, exiftool, "-all=", "-overwrite_original", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("exiftool: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// DALL·E downloads are named like
// "DALL·E 2024-01-02 12.34.56 - a red fox in the snow.png".
var dalleNameRe = regexp.MustCompile(`^DALL·E (\d{4}-\d{2}-\d{2}) [\d.]+ - (.+)(\.[a-zA-Z0-9]+)$`)

// DalleName returns the slugged replacement for a DALL·E download
// filename, keeping the date for uniqueness. It reports false for
// filenames that are not DALL·E downloads.
func DalleName(name string) (string, bool) {
	m := dalleNameRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	date, prompt, ext := m[1], m[2], m[3]
	return date + "-" + slug.Make(prompt) + strings.ToLower(ext), true
}

// RenameDalle renames every DALL·E download in dir and returns the new
// names.
func RenameDalle(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var renamed []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		newName, ok := DalleName(entry.Name())
		if !ok {
			continue
		}
		from := filepath.Join(dir, entry.Name())
		to := filepath.Join(dir, newName)
		if _, err := os.Stat(to); err == nil {
			continue
		}
		if err := os.Rename(from, to); err != nil {
			return renamed, fmt.Errorf("rename %q: %w", entry.Name(), err)
		}
		renamed = append(renamed, newName)
	}
	return renamed, nil
}
