package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopped    = "Server stopped"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff   = "nosniff"
	HeaderValueDeny      = "DENY"
	HeaderValueNoReferer = "no-referrer"
)

// Routes
const (
	PathHealthz = "/healthz"
	PathStatus  = "/status"
	PathVersion = "/version"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*"
)

// Server limits
const (
	MaxRequestBytes   = 1 << 20
	ReadHeaderTimeout = 5 * time.Second
)

// quietPaths are served without request logging
var quietPaths = []string{PathHealthz, PathMetrics, "/swagger/"}
