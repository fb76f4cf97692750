package handler

// Health statuses
const (
	StatusOK = "ok"
)

// Content types
const (
	ContentTypeJSON   = "application/json"
	HeaderContentType = "Content-Type"
)

// User-facing error messages
const (
	ErrMsgInvalidRequest = "Invalid request. Please check your inputs."
	ErrMsgInvalidJSON    = "Invalid request format"
	ErrMsgNotFound       = "Resource not found."
	ErrMsgGenericServer  = "Something went wrong"
)

// Log messages
const (
	LogMsgFailedToEncodeResponse = "Failed to encode JSON response"
	LogMsgFailedToWriteResponse  = "Failed to write response buffer"
)

// initialBufferSize is the starting capacity of pooled response buffers
const initialBufferSize = 512
