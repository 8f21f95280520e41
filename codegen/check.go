package codegen

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/teranos/astgen/errors"
)

// CheckResult holds the result of an up-to-date check
type CheckResult struct {
	UpToDate bool
	// Differences lists files whose content differs (relative paths)
	Differences []string
	// Missing lists generated files that do not exist in the existing dir
	Missing []string
}

// CompareDirectories compares every file generated into generatedDir with the
// file of the same relative path under existingDir.
//
// If ignoreMetadata is true, banner lines starting with "// Produced " are
// ignored, so a changed stamp alone never makes files out of date.
func CompareDirectories(generatedDir, existingDir string, ignoreMetadata bool) (*CheckResult, error) {
	result := &CheckResult{}

	err := filepath.WalkDir(generatedDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		relPath, err := filepath.Rel(generatedDir, path)
		if err != nil {
			return err
		}
		existingPath := filepath.Join(existingDir, relPath)

		if _, err := os.Stat(existingPath); os.IsNotExist(err) {
			result.Missing = append(result.Missing, relPath)
			return nil
		}

		different, err := filesAreDifferent(path, existingPath, ignoreMetadata)
		if err != nil {
			return err
		}
		if different {
			result.Differences = append(result.Differences, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compare %s with %s", generatedDir, existingDir)
	}

	sort.Strings(result.Differences)
	sort.Strings(result.Missing)
	result.UpToDate = len(result.Differences) == 0 && len(result.Missing) == 0
	return result, nil
}

// filesAreDifferent compares two files, optionally ignoring metadata lines.
func filesAreDifferent(file1, file2 string, ignoreMetadata bool) (bool, error) {
	content1, err := os.ReadFile(file1)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file1)
	}

	content2, err := os.ReadFile(file2)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", file2)
	}

	if !ignoreMetadata {
		return !bytes.Equal(content1, content2), nil
	}

	return !bytes.Equal(FilterMetadataLines(content1), FilterMetadataLines(content2)), nil
}

// FilterMetadataLines removes the "// Produced ..." banner line, which
// changes with the stamp and does not represent an actual change. Every
// other byte, line endings included, is kept as is.
func FilterMetadataLines(content []byte) []byte {
	result := make([]byte, 0, len(content))
	for _, line := range bytes.SplitAfter(content, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte(MetadataPrefix)) {
			continue
		}
		result = append(result, line...)
	}
	return result
}
