package middleware

import (
	"net/http" // Cookie attributes
	"time"     // Session lifetime

	"chainwatch/internal/session" // Flash messages
	"chainwatch/internal/utils"   // Session token helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Session identifiers
	"github.com/sirupsen/logrus" // Logging library
)

// SessionCookie is the name of the signed session cookie
const SessionCookie = "chainwatch.sid"

const sessionTTL = 24 * time.Hour

// SessionMiddleware resolves the caller's session from a signed cookie, starting
// a new one when the cookie is missing or invalid, and attaches its Flash
func SessionMiddleware(store session.Store, secret string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		// Reuse the session if the cookie verifies
		if raw, err := c.Cookie(SessionCookie); err == nil && raw != "" {
			if claims, err := utils.ParseSessionToken(raw, secret); err == nil {
				sessionID = claims.SessionID
			}
		}
		// Otherwise start a new session
		if sessionID == "" {
			sessionID = uuid.NewString()
			token, err := utils.GenerateSessionToken(sessionID, secret, sessionTTL)
			if err != nil {
				logrus.WithError(err).Error("Failed to sign session cookie")
			} else {
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", secure, true)
			}
		}
		session.Attach(c, session.New(c.Request.Context(), sessionID, store))
		c.Next() // Proceed to the next handler
	}
}
