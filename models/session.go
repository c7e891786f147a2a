package models

import "time"

// Session is the client's persisted login for one server. Only the bearer
// token is kept; team passwords never reach disk.
type Session struct {
	ServerURL string
	Login     string
	UserID    int64
	Token     string
	UpdatedAt time.Time
}

// Valid reports whether the session carries enough to authenticate a request.
func (s Session) Valid() bool {
	return s.Token != "" && s.UserID > 0
}
