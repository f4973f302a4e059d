package domain

import "time"

// User is the authenticated session identity. The session is mock: any
// non-empty credentials produce a user, and the record only lives in local
// storage.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	LoginTime time.Time `json:"loginTime"`
}

// FullName joins first and last name with a space.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
