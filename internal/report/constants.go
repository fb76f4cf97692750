package report

// Output formats accepted by Write
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Lines printed by the text format
const (
	LineTeamMedian  = "Team %d - Median Badges: %v\n"
	LinePlayerTotal = "Team %d - Player %d: %v badges\n"
)

// Legacy plain-text log phrases
const (
	legacyRoundPrefix  = "Starting Round"
	legacyGrantPattern = `^Round (\d+): Team (\d+) - Player (\d+) received (\d+) badges`

	// peekBufferSize bounds the leading whitespace skipped when detecting the format
	peekBufferSize = 64 * 1024
)

// Error messages
const (
	ErrMsgRoundMismatch   = "grant round does not match current round"
	ErrMsgFailedToRead    = "failed to read battle log"
	ErrMsgUnknownFormat   = "unknown report format"
	ErrMsgFailedToWrite   = "failed to write report"
	ErrMsgFailedToOpenLog = "failed to open battle log"
)
