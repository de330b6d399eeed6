package scores

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the durable session log: a flat CSV file with a single header
// row. Prior entries are never rewritten or reordered.
type Store struct {
	path string
}

// Open prepares a store at the given path, creating parent directories as
// needed. The file itself is created lazily on first append.
func Open(path string) (*Store, error) {
	// Expand ~ to home directory
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("scores: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
	}

	return &Store{path: path}, nil
}

// Path returns the location of the score log.
func (s *Store) Path() string {
	return s.path
}

// Append adds one record to the log, writing the header row first when the
// file does not exist yet.
func (s *Store) Append(rec Record) error {
	_, statErr := os.Stat(s.path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("scores: cannot open log: %w", err)
	}

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(header); err != nil {
			f.Close()
			return fmt.Errorf("scores: cannot write header: %w", err)
		}
	}
	if err := w.Write(rec.fields()); err != nil {
		f.Close()
		return fmt.Errorf("scores: cannot write record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("scores: cannot flush record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("scores: cannot close log: %w", err)
	}
	return nil
}

// ReadAll returns every well-formed record in file order. Malformed rows
// (wrong field count, unparseable timestamp, non-integer numerics) and the
// header are skipped silently. A missing log yields an empty result.
func (s *Store) ReadAll() ([]Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scores: cannot open log: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot read log: %w", err)
	}
	// Older exports of the same schema carried a UTF-8 BOM.
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var records []Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Skip unparseable lines, keep going.
			continue
		}
		if rec, ok := parseRecord(row); ok {
			records = append(records, rec)
		}
	}
	return records, nil
}
