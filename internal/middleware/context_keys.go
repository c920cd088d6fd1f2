package middleware

// contextKey is the type used for values this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerKey   = contextKey("logger")
	tenantIDKey = contextKey("tenantID")
	userIDKey   = contextKey("userID")
)
