package battlelog

// EventType identifies the shape of a battle log record
type EventType string

// Event types written by the simulation driver
const (
	EventGameStart    EventType = "game_start"
	EventRoundStart   EventType = "round_start"
	EventBadgeGrant   EventType = "badge_grant"
	EventAPIError     EventType = "api_error"
	EventAPIResponse  EventType = "api_response"
	EventBossDefeated EventType = "boss_defeated"
	EventRoundEnd     EventType = "round_end"
	EventGameOver     EventType = "game_over"
)

// ErrorReason distinguishes the api_error records
type ErrorReason string

// Reasons an odds lookup could not be used
const (
	ReasonMalformedResponse ErrorReason = "malformed_response"
	ReasonNoData            ErrorReason = "no_data"
	ReasonMissingWinRate    ErrorReason = "missing_win_rate"
)

// Human-readable phrases carried in the msg field
const (
	MsgGameStart         = "Game Simulation Log"
	MsgRoundStart        = "Starting Round %d"
	MsgBadgeGrant        = "Round %d: Team %d - Player %d received %d badges (%d XP)"
	MsgMalformedResponse = "Round %d: Team %d - Error: Empty or malformed response from API"
	MsgNoData            = "Round %d: Team %d - Error: No data found in response from API"
	MsgMissingWinRate    = "Round %d: Team %d - Error: Unable to fetch probability from API response"
	MsgAPIResponse       = "Response from API: %s"
	MsgBossDefeated      = "Round %d: Team %d defeated the boss!"
	MsgRoundEnd          = "End of Round %d"
	MsgGameOverTwoTeams  = "Both teams have defeated all bosses. Ending game."
	MsgGameOver          = "All teams have defeated all bosses. Ending game."
)

// File handling
const (
	FilePermissions = 0o644

	// maxLineBytes bounds a single record; api_response records embed the raw body
	maxLineBytes = 4 << 20
)

// Error messages
const (
	ErrMsgFailedToOpenLog     = "failed to open battle log"
	ErrMsgFailedToEncode      = "failed to encode battle log record"
	ErrMsgFailedToWrite       = "failed to write battle log record"
	ErrMsgMalformedRecord     = "malformed battle log record"
	ErrMsgWriterClosed        = "battle log writer is closed"
)
