package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbook-app/finbook_backend/internal/dto"
)

const (
	tenantHeader = "X-Tenant-ID"
	userHeader   = "X-User-ID"

	// defaultActorID is recorded in audit fields when the caller does not
	// identify itself.
	defaultActorID = "system"
)

// TenantMiddleware resolves the tenant for the request from the X-Tenant-ID
// header and rejects requests without one. The optional X-User-ID header
// identifies the acting user for audit fields.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetHeader(tenantHeader)
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    "MISSING_TENANT",
				Message: "the " + tenantHeader + " header is required",
			})
			return
		}
		c.Set(string(tenantIDKey), tenantID)

		userID := c.GetHeader(userHeader)
		if userID == "" {
			userID = defaultActorID
		}
		c.Set(string(userIDKey), userID)

		c.Next()
	}
}

// GetTenantIDFromContext retrieves the resolved tenant ID from the Gin context.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	tenantVal, exists := c.Get(string(tenantIDKey))
	if !exists {
		return "", false
	}
	tenantID, ok := tenantVal.(string)
	return tenantID, ok
}

// GetUserIDFromContext retrieves the acting user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userVal, exists := c.Get(string(userIDKey))
	if !exists {
		return "", false
	}
	userID, ok := userVal.(string)
	return userID, ok
}
