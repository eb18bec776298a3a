package handlers

import (
	"net/http"
	"strings"

	"engagement_service/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderProfileID   = "X-Profile-ID"
	HeaderProfileRole = "X-Profile-Role"

	ctxProfileID   = "profile_id"
	ctxProfileRole = "profile_role"
)

var errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing acting profile", http.StatusUnauthorized)

// RequireIdentity reads the acting profile resolved by the gateway. The role
// is informational: ownership and party checks are made against stored data.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := strings.TrimSpace(c.GetHeader(HeaderProfileID))
		if profileID == "" {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}
		c.Set(ctxProfileID, profileID)
		c.Set(ctxProfileRole, strings.ToLower(strings.TrimSpace(c.GetHeader(HeaderProfileRole))))
		c.Next()
	}
}

func actingProfile(c *gin.Context) string {
	return c.GetString(ctxProfileID)
}

func actingRole(c *gin.Context) string {
	return c.GetString(ctxProfileRole)
}
