package user

import (
	"net/http"
	"time"

	"github.com/smashcourt/smashcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailTaken         = apperror.New(http.StatusConflict, "email already registered")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "invalid role")
)

// Role determines what a principal may do: players book, owners list courts,
// admins can do both plus manage the catalog and rules.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
