// Package picker implements the interactive file selector used when
// the clean command is run without file arguments.
package picker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// TextFiles lists the .txt files directly inside dir, sorted by name.
func TextFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var files []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}

	sort.Strings(files)
	return files, nil
}

// Select shows an interactive multi-select over the .txt files in dir
// and returns the chosen paths. It returns an empty slice when the
// user cancels.
func Select(dir string) ([]string, error) {
	files, err := TextFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .txt files found in %s", dir)
	}

	return runSelector(files)
}
