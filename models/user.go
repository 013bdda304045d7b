package models

import (
	"time"
)

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext, and is excluded from every JSON response.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// Session is a DB-backed login session. The token travels back to the client
// on register/login and returns on each request via X-Session-Token.
type Session struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"index;not null"`
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}
