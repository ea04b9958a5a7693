package httpserver

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionCookie is the tab-session carrier. No MaxAge: the cookie dies
// with the browser session, and a new session starts with an empty cart.
const sessionCookie = "g2_session"

const sessionCtxKey = "sessionID"

// sessionMiddleware ensures every API request carries a session id,
// minting one for first-time visitors.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(sessionCtxKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}
