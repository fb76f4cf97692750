package config

import "time"

// Defaults for the simulation driver
const (
	DefaultAPIBaseURL      = "http://localhost:5000/"
	DefaultAPITimeout      = 10 * time.Second
	DefaultBattleLogPath   = "game_log.jsonl"
	DefaultDefeatThreshold = 0.98
	DefaultBadgesPerGrant  = 1
	DefaultXPPerBadge      = 175
	DefaultTeamCount       = 2
	DefaultPlayersPerTeam  = 4
)

// Defaults for the database and the maintenance utility
const (
	DefaultDBUser              = "postgres"
	DefaultDBPassword          = "postgres"
	DefaultDBHost              = "localhost"
	DefaultDBPort              = "5432"
	DefaultDBName              = "team_dynamics"
	DefaultDBMaxConns          = 4
	DefaultDBMaxConnIdleTime   = 5 * time.Minute
	DefaultDBMaxConnLifetime   = 30 * time.Minute
	DefaultResetBaselineLevel  = 1
	DefaultResetMinCharacterID = 1
	DefaultResetMaxCharacterID = 8
)

// Defaults for ambient settings
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultArenaPort   = 5000
)

// Environment variable names
const (
	EnvAPIBaseURL          = "API_BASE_URL"
	EnvAPITimeout          = "API_TIMEOUT"
	EnvBattleLogPath       = "BATTLE_LOG_PATH"
	EnvRosterPath          = "ROSTER_PATH"
	EnvDefeatThreshold     = "DEFEAT_THRESHOLD"
	EnvBadgesPerGrant      = "BADGES_PER_GRANT"
	EnvXPPerBadge          = "XP_PER_BADGE"
	EnvMaxRounds           = "MAX_ROUNDS"
	EnvRoundDelay          = "ROUND_DELAY"
	EnvStatusPort          = "STATUS_PORT"
	EnvArenaPort           = "ARENA_PORT"
	EnvDBUser              = "DB_USER"
	EnvDBPassword          = "DB_PASSWORD"
	EnvDBHost              = "DB_HOST"
	EnvDBPort              = "DB_PORT"
	EnvDBName              = "DB_NAME"
	EnvDBMaxConns          = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime   = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime   = "DB_MAX_CONN_LIFETIME"
	EnvResetBaselineLevel  = "RESET_BASELINE_LEVEL"
	EnvResetMinCharacterID = "RESET_MIN_CHARACTER_ID"
	EnvResetMaxCharacterID = "RESET_MAX_CHARACTER_ID"
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvEnvironment         = "ENVIRONMENT"
	EnvVersion             = "VERSION"
)

// Error messages
const (
	ErrMsgInvalidPort         = "invalid %s value"
	ErrMsgFailedToReadRoster  = "failed to read roster file"
	ErrMsgFailedToParseRoster = "failed to parse roster file"
	ErrMsgInvalidConfig       = "invalid configuration"
	ErrMsgDuplicateTeam       = "duplicate team id %d in roster"
)
