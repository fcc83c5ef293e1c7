package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookie manages the http-only cookie the session token travels in.
type SessionCookie struct {
	Name   string
	MaxAge int
	Secure bool
}

// NewSessionCookie creates a cookie helper for the given settings.
func NewSessionCookie(name string, maxAgeSeconds int, secure bool) *SessionCookie {
	return &SessionCookie{Name: name, MaxAge: maxAgeSeconds, Secure: secure}
}

// Set writes the session token cookie on the response.
func (s *SessionCookie) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		s.Name,
		token,
		s.MaxAge,
		"/",
		"",
		s.Secure,
		true, // httpOnly - always true for the session cookie
	)
}

// Clear removes the session cookie (empty value, immediate expiry).
func (s *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, "", -1, "/", "", s.Secure, true)
}
