package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/BossRush_Go/internal/domain"
	"github.com/osse101/BossRush_Go/internal/logger"
)

// Config holds the application configuration shared by every binary.
type Config struct {
	Environment string `validate:"required"`
	LogLevel    string `validate:"required,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"required,oneof=json text"`
	Version     string

	// Simulation driver
	APIBaseURL      string        `validate:"required,url"`
	APITimeout      time.Duration `validate:"gt=0"`
	BattleLogPath   string        `validate:"required"`
	RosterPath      string
	Teams           []domain.Team `validate:"required,min=1,dive"`
	DefeatThreshold float64       `validate:"gt=0,lte=1"`
	BadgesPerGrant  int           `validate:"min=1"`
	XPPerBadge      int           `validate:"min=0"`
	MaxRounds       int           `validate:"min=0"`
	RoundDelay      time.Duration `validate:"min=0"`
	StatusPort      int           `validate:"min=0,max=65535"`
	ArenaPort       int           `validate:"min=1,max=65535"`

	// Database
	DBUser            string `validate:"required"`
	DBPassword        string
	DBHost            string `validate:"required"`
	DBPort            string `validate:"required"`
	DBName            string `validate:"required"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Maintenance utility
	ResetBaselineLevel  int `validate:"min=1"`
	ResetMinCharacterID int `validate:"min=1"`
	ResetMaxCharacterID int `validate:"gtefield=ResetMinCharacterID"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Version:     getEnv(EnvVersion, DefaultVersion),

		APIBaseURL:      getEnv(EnvAPIBaseURL, DefaultAPIBaseURL),
		APITimeout:      getEnvAsDuration(EnvAPITimeout, DefaultAPITimeout),
		BattleLogPath:   getEnv(EnvBattleLogPath, DefaultBattleLogPath),
		RosterPath:      getEnv(EnvRosterPath, ""),
		DefeatThreshold: getEnvAsFloat(EnvDefeatThreshold, DefaultDefeatThreshold),
		BadgesPerGrant:  getEnvAsInt(EnvBadgesPerGrant, DefaultBadgesPerGrant),
		XPPerBadge:      getEnvAsInt(EnvXPPerBadge, DefaultXPPerBadge),
		MaxRounds:       getEnvAsInt(EnvMaxRounds, 0),
		RoundDelay:      getEnvAsDuration(EnvRoundDelay, 0),

		DBUser:            getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:        getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:            getEnv(EnvDBHost, DefaultDBHost),
		DBPort:            getEnv(EnvDBPort, DefaultDBPort),
		DBName:            getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:        getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime),

		ResetBaselineLevel:  getEnvAsInt(EnvResetBaselineLevel, DefaultResetBaselineLevel),
		ResetMinCharacterID: getEnvAsInt(EnvResetMinCharacterID, DefaultResetMinCharacterID),
		ResetMaxCharacterID: getEnvAsInt(EnvResetMaxCharacterID, DefaultResetMaxCharacterID),
	}

	// Ports are parsed strictly, unlike the other numeric settings
	var err error
	if cfg.StatusPort, err = parsePort(EnvStatusPort, 0); err != nil {
		return nil, err
	}
	if cfg.ArenaPort, err = parsePort(EnvArenaPort, DefaultArenaPort); err != nil {
		return nil, err
	}

	if cfg.RosterPath != "" {
		teams, err := LoadRoster(cfg.RosterPath)
		if err != nil {
			return nil, err
		}
		cfg.Teams = teams
	} else {
		cfg.Teams = DefaultRoster()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultRoster returns two teams of four players, ids 1 and 2.
func DefaultRoster() []domain.Team {
	teams := make([]domain.Team, 0, DefaultTeamCount)
	for id := 1; id <= DefaultTeamCount; id++ {
		teams = append(teams, domain.Team{ID: id, Players: DefaultPlayersPerTeam})
	}
	return teams
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// GetServerConnString returns a connection string for the maintenance
// "postgres" database, used to create the application database.
func (c *Config) GetServerConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
	)
}

// AddSource reports whether log lines should carry file/line info
func (c *Config) AddSource() bool {
	switch c.Environment {
	case logger.EnvironmentDev, logger.EnvironmentTest, "development":
		return true
	}
	return false
}

func parsePort(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	port, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidPort+": %w", key, err)
	}
	return port, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back on parse errors
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}

// getEnvAsFloat retrieves a float environment variable, falling back on parse errors
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// getEnvAsDuration retrieves a duration environment variable, falling back on parse errors
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
