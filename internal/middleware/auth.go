// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shopkart/backend/internal/utils"
)

// OptionalAuth extracts the user's identity from a token minted by the hosted
// auth provider, when one is presented. Requests without a valid token proceed
// anonymously; nothing in the storefront requires login.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}

// SessionKeys resolves the device storage keys for the cart and wishlist
// blobs. A missing header falls back to the configured fixed keys, matching
// the single-device semantics of the storefront. Cart and wishlist always get
// distinct keys so their blobs never overwrite each other.
func SessionKeys(defaultCartKey, defaultWishlistKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		base := strings.TrimSpace(c.GetHeader("X-Session-Key"))
		if base == "" {
			c.Set("cart_key", defaultCartKey)
			c.Set("wishlist_key", defaultWishlistKey)
		} else {
			c.Set("cart_key", base+":cart")
			c.Set("wishlist_key", base+":wishlist")
		}
		c.Next()
	}
}

func GetCartKey(c *gin.Context) string {
	return contextString(c, "cart_key")
}

func GetWishlistKey(c *gin.Context) string {
	return contextString(c, "wishlist_key")
}

func contextString(c *gin.Context, name string) string {
	if value, exists := c.Get(name); exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}
