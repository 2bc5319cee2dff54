package domain

import "time"

// User is a registered customer identified by their mobile number.
// Admins are regular users with the admin flag set.
type User struct {
	ID           int64
	Mobile       string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
