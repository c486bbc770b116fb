package util

const DateFormat = "2006-01-02"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeSVG  = "image/svg+xml"
	MimeJSON = "application/json"
)

// ContextSessionKey holds the *SessionClaims set by the session middleware.
const ContextSessionKey = "session"

const (
	DefaultStatisticsLimit = 100
	MaxStatisticsLimit     = 1000
)
