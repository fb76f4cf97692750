package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 1

	// DriverName is the database/sql driver registered by pgx/v5/stdlib
	DriverName = "pgx"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
	ErrMsgFailedToOpenDatabase        = "failed to open database"
	ErrMsgFailedToCreateMigrator      = "failed to create migration provider"
	ErrMsgFailedToMigrate             = "failed to apply migrations"
	ErrMsgFailedToCheckDatabase       = "failed to check if database exists"
	ErrMsgFailedToCreateDatabase      = "failed to create database"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgDatabaseCreated                 = "Database created"
)
