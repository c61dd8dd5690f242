package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/khanh-nd1204/music-be/domain"
)

// IdentityKey is the gin context key under which the auth middleware
// stores the verified token identity.
const IdentityKey = "identity"

// IdentityFromContext extracts the authenticated identity set by the
// auth middleware.
func IdentityFromContext(c *gin.Context) (*domain.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*domain.Identity)
	return identity, ok
}
