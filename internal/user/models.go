package user

import (
	"errors"

	"github.com/google/uuid"
)

// Authority is the account role: applicants are "user", admission
// officers are "admin".
type Authority string

const (
	AuthorityUser  Authority = "USER"
	AuthorityAdmin Authority = "ADMIN"
)

// Role returns the rbac role string for this authority.
func (a Authority) Role() string {
	if a == AuthorityAdmin {
		return "admin"
	}
	return "user"
}

type User struct {
	ID           int64
	UUID         uuid.UUID
	PhoneNumber  string
	Name         string
	PasswordHash string
	Authority    Authority
}

type SignUpRequest struct {
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	Password    string `json:"password"`
}

type Response struct {
	PhoneNumber string    `json:"phone_number"`
	Name        string    `json:"name"`
	Authority   Authority `json:"authority"`
}

var (
	ErrPhoneTaken  = errors.New("phone number already exists")
	ErrNotFound    = errors.New("user not found")
	ErrBadPassword = errors.New("wrong phone number or password")
)
