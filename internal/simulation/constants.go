package simulation

// Log messages
const (
	LogMsgRunStarted        = "Simulation started"
	LogMsgRoundStarted      = "Loading round"
	LogMsgOddsUnavailable   = "Odds unavailable"
	LogMsgBossDefeated      = "Boss defeated"
	LogMsgTeamFinished      = "Team has no bosses remaining"
	LogMsgXPUpdateFailed    = "XP update failed"
	LogMsgRunFinished       = "Simulation finished"
	LogMsgMaxRoundsExceeded = "Round limit reached before all bosses were defeated"
)

// Error messages
const (
	ErrMsgMaxRoundsExceeded = "round limit reached before all bosses were defeated"
	ErrMsgFailedToLog       = "failed to append battle log record"
	ErrMsgInvalidRoster     = "invalid roster"
)
