package constants

// Redis key formats
const (
	// Settings cache (single-row business settings, invalidated on admin update)
	KeySettings = "settings:current"

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{identifier}
)
