// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output names and writes converted documents. Writes go to a
// temporary file in the destination directory and are renamed into place,
// so a failed conversion never leaves a truncated document behind.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mddoc/pkg/types"
)

// WriteFile writes data to path atomically. The parent directory is created
// when missing. Every failure wraps types.ErrOutputWriteFailed and removes
// the temporary file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating directory %s: %v", types.ErrOutputWriteFailed, dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", types.ErrOutputWriteFailed, path, err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", types.ErrOutputWriteFailed, path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", types.ErrOutputWriteFailed, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", types.ErrOutputWriteFailed, path, err)
	}
	return nil
}

// Path derives the output path for input. Local inputs keep their basename
// with ext replacing the extension and land in outputDir, or beside the
// input when outputDir is empty. URLs are flattened to a host_path name in
// outputDir, or the current directory.
func Path(input, outputDir, ext string) string {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return filepath.Join(outputDir, filenameFromURL(input)+ext)
	}

	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if outputDir == "" {
		outputDir = filepath.Dir(input)
	}
	return filepath.Join(outputDir, name+ext)
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// filenameFromURL flattens a URL into a filename.
// Example: https://example.com/docs/intro.html → example_com_docs_intro
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return sanitize(rawURL)
	}

	parts := []string{sanitize(parsed.Host)}
	path := strings.Trim(parsed.Path, "/")
	path = strings.TrimSuffix(path, filepath.Ext(path))
	if path != "" {
		for _, seg := range strings.Split(path, "/") {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
