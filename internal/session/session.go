// Package session provides typed accessors over the per-visitor cookie
// session: language choice, logged-in identity, and one-shot flashes.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	keyLang     = "lang"
	keyUserID   = "user_id"
	keyUserName = "user_name"
)

// Lang returns the visitor's chosen language, or fallback when unset.
func Lang(c *gin.Context, fallback string) string {
	s := sessions.Default(c)
	if v, ok := s.Get(keyLang).(string); ok && v != "" {
		return v
	}
	return fallback
}

// SetLang stores the visitor's language choice.
func SetLang(c *gin.Context, lang string) error {
	s := sessions.Default(c)
	s.Set(keyLang, lang)
	return s.Save()
}

// UserID returns the logged-in user id, if any.
func UserID(c *gin.Context) (int64, bool) {
	s := sessions.Default(c)
	id, ok := s.Get(keyUserID).(int64)
	return id, ok
}

// UserName returns the logged-in user's display name, or "".
func UserName(c *gin.Context) string {
	s := sessions.Default(c)
	name, _ := s.Get(keyUserName).(string)
	return name
}

// SetUser records a successful login.
func SetUser(c *gin.Context, id int64, name string) error {
	s := sessions.Default(c)
	s.Set(keyUserID, id)
	s.Set(keyUserName, name)
	return s.Save()
}

// SetUserName mirrors a rename into the session's display name.
func SetUserName(c *gin.Context, name string) error {
	s := sessions.Default(c)
	s.Set(keyUserName, name)
	return s.Save()
}

// Clear wipes all session state (logout).
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// Flash queues a one-shot notice for the next rendered page.
func Flash(c *gin.Context, msg string) error {
	s := sessions.Default(c)
	s.AddFlash(msg)
	return s.Save()
}

// TakeFlashes consumes and returns any queued notices. Consumption is
// persisted immediately so each notice renders exactly once.
func TakeFlashes(c *gin.Context) []string {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) > 0 {
		_ = s.Save()
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
