package gameapi

// Endpoint paths relative to the configured base URL
const (
	PathOdds     = "games/odds/%d"
	PathPlayerXP = "characters/%d/xp"
)

// Operation names used for metrics and logs
const (
	OperationFetchOdds = "fetch_odds"
	OperationUpdateXP  = "update_xp"
)

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 1 << 20

// Error messages
const (
	ErrMsgNoResult          = "no result from game API"
	ErrMsgFailedToMarshal   = "failed to marshal body"
	ErrMsgFailedToCreateReq = "failed to create request"
	ErrMsgRequestFailed     = "request failed"
	ErrMsgUnexpectedStatus  = "unexpected status"
	ErrMsgFailedToReadBody  = "failed to read body"
	ErrMsgFailedToDecode    = "failed to decode odds"
)

// Log messages
const (
	LogMsgAPIRequest      = "Game API request"
	LogMsgAPIRequestError = "Game API request failed"
)
