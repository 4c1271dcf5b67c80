package model

import "time"

type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthData - tokens handed to the client after register/login
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
