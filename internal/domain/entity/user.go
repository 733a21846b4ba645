// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "fmt"

// User is a person who writes reviews. Two users are the same person when
// they share an email address.
type User struct {
	ID          int64  `json:"id,omitempty"` // Storage generated; zero until first persisted.
	Name        string `json:"name"`
	Email       string `json:"email"` // Unique natural key.
	PhoneNumber string `json:"phonenumber"`
}

// Equal reports whether u and other identify the same user.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}

	return u.Email == other.Email
}

func (u *User) String() string {
	return fmt.Sprintf("User{id=%d, name=%q, email=%q, phonenumber=%q}", u.ID, u.Name, u.Email, u.PhoneNumber)
}
