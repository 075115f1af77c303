package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteJSON encodes r as indented JSON. Undefined outputs are written as null.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode sweep report of model %q: %w", r.Meta.Model, err)
	}
	return nil
}

// SaveJSON writes r to path and returns the file it wrote. When path is a
// directory, or ends with a separator, the file is named by FileName.
// Missing parent directories are created.
func SaveJSON(r *Report, path string) (string, error) {
	if isDir(path) {
		path = filepath.Join(path, FileName(r))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report %s: %w", path, err)
	}
	if err := WriteJSON(f, r); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}

// FileName is "<model>-<first 8 chars of the run id>.json".
func FileName(r *Report) string {
	name := strings.ToLower(strings.Join(strings.Fields(r.Meta.Model), "-"))
	if name == "" {
		name = "sweep"
	}
	return fmt.Sprintf("%s-%s.json", name, r.Meta.RunID.String()[:8])
}

func isDir(path string) bool {
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator)) {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
