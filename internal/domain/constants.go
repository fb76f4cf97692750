package domain

// Win-rate boundaries used when reading odds
const (
	// MaxWinRate is exclusive: bosses at or above it are no longer "remaining"
	MaxWinRate = 1.0
)

// JSON field names read by hand
const (
	fieldData = "data"
)
