package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cliffordwilliam/ifabula-library/pkg/token"
)

// Auth verifies the Authorization header and stores the caller's email
// in the context under "email". The token is accepted bare or with a
// "Bearer " prefix.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		tok := strings.TrimPrefix(header, "Bearer ")
		email, err := tokens.Verify(tok)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, token.ErrExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		c.Set("email", email)
		c.Next()
	}
}
