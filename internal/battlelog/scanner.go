package battlelog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedRecord is wrapped by Scanner errors for lines that aren't records
var ErrMalformedRecord = errors.New(ErrMsgMalformedRecord)

// Scanner reads records from a battle log one line at a time, skipping blank
// lines.
type Scanner struct {
	sc   *bufio.Scanner
	line int
	rec  Record
	err  error
}

// NewScanner returns a Scanner reading from r
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Scanner{sc: sc}
}

// Scan advances to the next record. It returns false at EOF or on the first
// error, which is then available from Err.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.sc.Scan() {
		s.line++
		raw := bytes.TrimSpace(s.sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		rec, err := DecodeLine(raw)
		if err != nil {
			s.err = fmt.Errorf("line %d: %w: %v", s.line, ErrMalformedRecord, err)
			return false
		}
		s.rec = rec
		return true
	}
	s.err = s.sc.Err()
	return false
}

// Record returns the record read by the last successful Scan
func (s *Scanner) Record() Record { return s.rec }

// Line returns the 1-based line number of the current record
func (s *Scanner) Line() int { return s.line }

// Err returns the first error encountered, or nil at a clean EOF
func (s *Scanner) Err() error { return s.err }

// ReadAll collects every record from r
func ReadAll(r io.Reader) ([]Record, error) {
	var records []Record
	s := NewScanner(r)
	for s.Scan() {
		records = append(records, s.Record())
	}
	return records, s.Err()
}
