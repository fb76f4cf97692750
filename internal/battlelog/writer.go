package battlelog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ErrWriterClosed is returned by Append after Close
var ErrWriterClosed = errors.New(ErrMsgWriterClosed)

// Writer appends records to the battle log. It owns one handle for the
// lifetime of a run and writes each record with a single unbuffered Write.
type Writer struct {
	mu    sync.Mutex
	out   io.Writer
	close func() error
	runID string
	now   func() time.Time
}

// Open truncates or creates the log file at path and returns a Writer that
// stamps every record with runID.
func Open(path, runID string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, FilePermissions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenLog, err)
	}
	w := NewWriter(f, runID)
	w.close = f.Close
	return w, nil
}

// NewWriter wraps an arbitrary io.Writer. Close on the result is a no-op for
// the underlying writer.
func NewWriter(out io.Writer, runID string) *Writer {
	return &Writer{
		out:   out,
		close: func() error { return nil },
		runID: runID,
		now:   time.Now,
	}
}

// Append writes rec as one JSON line. Time and RunID are filled in when unset.
func (w *Writer) Append(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.out == nil {
		return ErrWriterClosed
	}

	if rec.Time.IsZero() {
		rec.Time = w.now().UTC()
	}
	if rec.RunID == "" {
		rec.RunID = w.runID
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncode, err)
	}
	line = append(line, '\n')

	if _, err := w.out.Write(line); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWrite, err)
	}
	return nil
}

// Close releases the underlying file. It is safe to call more than once.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.out == nil {
		return nil
	}
	w.out = nil
	return w.close()
}
