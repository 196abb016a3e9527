package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	userPort "yatube/internal/ports/user"
)

const (
	// TokenCookie carries the session JWT.
	TokenCookie = "token"

	// LoginURL is where anonymous visitors of protected pages are sent.
	LoginURL = "/auth/login/"

	userIDKey   = "userID"
	usernameKey = "username"
)

// TokenParser turns a session token into the claims it carries.
type TokenParser interface {
	ParseToken(raw string) (*userPort.Claims, error)
}

// JWTAuthMiddleware identifies the visitor from the session cookie. An absent
// or invalid token leaves the request anonymous; it never rejects it.
func JWTAuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(TokenCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}
		claims, err := parser.ParseToken(raw)
		if err != nil {
			c.Next()
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Set(usernameKey, claims.Username)
		c.Next()
	}
}

// LoginRequired redirects anonymous visitors to the login page with a next
// parameter pointing back to the requested URI.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) != "" {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, LoginURL+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

// UserID returns the authenticated user's ID or "".
func UserID(c *gin.Context) string { return c.GetString(userIDKey) }

// Username returns the authenticated user's name or "".
func Username(c *gin.Context) string { return c.GetString(usernameKey) }
