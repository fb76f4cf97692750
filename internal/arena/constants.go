package arena

// Routes served by the arena, matching the game API
const (
	RouteOdds = "/games/odds/{team}"
	RouteXP   = "/characters/{id}/xp"
)

// Log messages
const (
	LogMsgOddsServed = "Odds served"
	LogMsgXPRecorded = "XP recorded"
)

// Error messages
const (
	ErrMsgFailedToReadScenario  = "failed to read scenario"
	ErrMsgFailedToParseScenario = "failed to parse scenario"
	ErrMsgInvalidScenario       = "invalid scenario"
	ErrMsgDuplicateTeam         = "duplicate team in scenario"
	ErrMsgUnknownTeam           = "Unknown team"
	ErrMsgInvalidID             = "Invalid id"
)
