package models

import "time"

type User struct {
	UserID          int64     `json:"userId"`
	Username        string    `json:"username"`
	Password        string    `json:"-"`
	Email           string    `json:"email"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	Role            Role      `json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Principal returns the identity the authorization layer works with.
func (u *User) Principal() Principal {
	return Principal{UserID: u.UserID, Role: u.Role}
}
