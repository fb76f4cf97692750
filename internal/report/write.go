package report

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Options controls how a report is rendered
type Options struct {
	Format  string
	Players bool
	// Language selects number formatting for the text format; English if unset
	Language language.Tag
}

// Summary is the JSON form of a report
type Summary struct {
	Rounds  int           `json:"rounds"`
	Teams   []TeamMedian  `json:"teams"`
	Players []PlayerTotal `json:"players,omitempty"`
}

// Write renders the tally to w in the requested format
func Write(w io.Writer, tally *Tally, opts Options) error {
	var err error
	switch opts.Format {
	case "", FormatText:
		err = writeText(w, tally, opts)
	case FormatJSON:
		err = writeJSON(w, tally, opts)
	default:
		return fmt.Errorf("%s: %q", ErrMsgUnknownFormat, opts.Format)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWrite, err)
	}
	return nil
}

func writeText(w io.Writer, tally *Tally, opts Options) error {
	tag := opts.Language
	if tag == language.Und {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	if opts.Players {
		for _, pt := range tally.Players() {
			if _, err := p.Fprintf(w, LinePlayerTotal, pt.Team, pt.Player, number.Decimal(pt.Badges)); err != nil {
				return err
			}
		}
	}
	for _, tm := range tally.Medians() {
		if _, err := p.Fprintf(w, LineTeamMedian, tm.Team, number.Decimal(tm.Median, number.MaxFractionDigits(2))); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, tally *Tally, opts Options) error {
	s := Summary{Rounds: tally.Rounds, Teams: tally.Medians()}
	if opts.Players {
		s.Players = tally.Players()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
