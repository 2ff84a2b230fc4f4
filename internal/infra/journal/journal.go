// Package journal appends one NDJSON record per publish run so past runs
// (including failed ones) stay inspectable.
package journal

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/afero"
)

// Record is one journal line.
type Record struct {
	RunID   string `json:"run_id"`
	Ts      string `json:"ts"`
	Version string `json:"version"`
	Tag     string `json:"tag,omitempty"`
	Branch  string `json:"branch"`
	State   string `json:"state"`
	Error   string `json:"error,omitempty"`
}

// NewRunID returns a fresh ULID for a publish run.
func NewRunID() string {
	return ulid.Make().String()
}

// Writer appends records to a journal file. The file is append-only; records
// are never rewritten.
type Writer struct {
	fsys afero.Fs
	path string
}

func NewWriter(fsys afero.Fs, path string) *Writer {
	return &Writer{fsys: fsys, path: path}
}

// Path returns the journal file location.
func (w *Writer) Path() string {
	return w.path
}

// Append marshals rec and appends it as one line.
func (w *Writer) Append(rec Record) error {
	if dir := filepath.Dir(w.path); dir != "." {
		if err := w.fsys.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := w.fsys.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		return err
	}
	return f.Sync()
}
