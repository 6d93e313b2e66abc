package service

import "time"

// User represents a user in the service layer.
type User struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserCreate holds the fields for registering a user.
type UserCreate struct {
	Email     string
	FirstName string
	LastName  string
}

// Session is a user together with a freshly issued bearer token.
type Session struct {
	User  User
	Token string
}
