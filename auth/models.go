// Package auth handles everything about who a caller is: registration, credential
// verification, token issuance/verification, the bearer-token middleware and the
// optional server-side session store.
// This file defines the entities persisted by the auth repositories.
package auth

import "time"

// User is a registered account. It is the "Entity" of the auth module: the shape
// stored by every repository backend. PasswordHash is excluded from JSON so it can
// never leak through a response.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Info returns the public profile of the user.
func (u *User) Info() UserInfo {
	return UserInfo{
		UserID: u.ID,
		Name:   u.Name,
		Age:    u.Age,
		Email:  u.Email,
	}
}

// Session is a server-side login record: the token issued at login and the user it
// was issued to. Sessions exist only when the stateful variant is enabled.
type Session struct {
	ID        string
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the session is past its expiry at instant now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
