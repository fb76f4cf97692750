package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/osse101/BossRush_Go/internal/battlelog"
)

var (
	// ErrRoundMismatch is returned when a grant names a round other than the
	// one most recently started
	ErrRoundMismatch = errors.New(ErrMsgRoundMismatch)

	// ErrMalformedRecord is returned for structured lines that can't be decoded
	ErrMalformedRecord = battlelog.ErrMalformedRecord

	legacyGrant = regexp.MustCompile(legacyGrantPattern)
)

// Parse reads a battle log and tallies the badge grants in it. Structured
// JSON logs are expected; plain-text logs from older runs are detected from
// the first non-blank line and parsed leniently.
func Parse(r io.Reader) (*Tally, error) {
	br := bufio.NewReaderSize(r, peekBufferSize)
	structured, err := sniffStructured(br)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRead, err)
	}
	if structured {
		return parseStructured(br)
	}
	return parseLegacy(br)
}

// sniffStructured peeks past leading whitespace and reports whether the log
// starts with a JSON object
func sniffStructured(br *bufio.Reader) (bool, error) {
	for n := 1; ; n++ {
		buf, err := br.Peek(n)
		if len(buf) < n {
			if errors.Is(err, io.EOF) {
				return true, nil
			}
			return false, err
		}
		c := buf[n-1]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			continue
		}
		return c == '{', nil
	}
}

func parseStructured(r io.Reader) (*Tally, error) {
	tally := NewTally()
	round := 0

	sc := battlelog.NewScanner(r)
	for sc.Scan() {
		rec := sc.Record()
		switch rec.Type {
		case battlelog.EventRoundStart:
			round++
		case battlelog.EventBadgeGrant:
			if rec.Round == 0 || rec.Round != round {
				return nil, fmt.Errorf("line %d: %w: got %d, want %d", sc.Line(), ErrRoundMismatch, rec.Round, round)
			}
			tally.Add(rec.Team, rec.Player, rec.Badges)
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, ErrMalformedRecord) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRead, err)
	}

	tally.Rounds = round
	return tally, nil
}

// parseLegacy counts "Starting Round" lines and accepts grant lines for the
// current round only; anything else is ignored
func parseLegacy(r io.Reader) (*Tally, error) {
	tally := NewTally()
	round := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, legacyRoundPrefix) {
			round++
			continue
		}

		m := legacyGrant.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		nums := make([]int, 4)
		for i := range nums {
			// The pattern only matches digits
			nums[i], _ = strconv.Atoi(m[i+1])
		}
		if nums[0] == 0 || nums[0] != round {
			continue
		}
		tally.Add(nums[1], nums[2], nums[3])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToRead, err)
	}

	tally.Rounds = round
	return tally, nil
}
