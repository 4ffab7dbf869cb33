// Package filex holds small filesystem helpers for the CLI.
package filex

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// EnsureSubdDir creates dirName under the current working directory if
// needed and returns its absolute path.
func EnsureSubdDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// NameForKey turns a storage key like "image/2025/3/14/<uuid>" into a flat
// file name, "image-<uuid>".
func NameForKey(key string) string {
	key = strings.Trim(key, "/")
	kind, _, _ := strings.Cut(key, "/")
	base := path.Base(key)
	if kind == "" || kind == base {
		return base
	}
	return kind + "-" + base
}

// SaveInto writes data to dirName/<NameForKey(key)> under the working
// directory, creating the directory first. It returns the written path.
func SaveInto(dirName, key string, data []byte) (string, error) {
	dir, err := EnsureSubdDir(dirName)
	if err != nil {
		return "", err
	}

	name := NameForKey(key)
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}

	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", p, err)
	}
	return p, nil
}
