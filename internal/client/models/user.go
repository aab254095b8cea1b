package models

import (
	"strings"

	"github.com/google/uuid"
)

// userNamespace scopes name-based user IDs so they cannot collide with
// UUIDs minted elsewhere.
var userNamespace = uuid.MustParse("6f1b3c3e-6a0c-4b7e-9d2e-1f5e8a4c2b10")

// User is the signed-in identity kept in the session key.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// NewUser builds the identity for an email. The UID is derived from the
// lower-cased email, so signing in again with the same address reopens the
// same history.
func NewUser(email string) *User {
	email = strings.TrimSpace(email)
	return &User{
		UID:         uuid.NewSHA1(userNamespace, []byte(strings.ToLower(email))).String(),
		Email:       email,
		DisplayName: DisplayNameFromEmail(email),
	}
}

// DisplayNameFromEmail returns the local part of an address: everything
// before the first "@", or the whole string when there is none.
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// Greeting is the name shown on the dashboard.
func (u *User) Greeting() string {
	if u == nil || u.DisplayName == "" {
		return "Student"
	}
	return u.DisplayName
}
