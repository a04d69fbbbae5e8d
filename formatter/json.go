package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// JSONReportFileName is the file WriteJSONFile creates inside the output directory
const JSONReportFileName = "routes-diff.json"

// WriteJSON encodes rep as indented JSON
func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}

// WriteJSONFile writes rep to dir/JSONReportFileName and returns the path.
func WriteJSONFile(dir string, rep Report) (string, error) {
	path := filepath.Join(dir, JSONReportFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, rep); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
