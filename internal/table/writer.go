package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes header followed by rows to path, replacing any existing
// file. The parent directory is created if it doesn't exist.
func WriteFile(path string, header []string, rows [][]string) (err error) {
	err = os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	writer := csv.NewWriter(file)
	// Rows are CRLF-terminated.
	writer.UseCRLF = true

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}

	// WriteAll flushes and reports any buffered write error.
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("writing rows to %s: %w", path, err)
	}

	return nil
}
