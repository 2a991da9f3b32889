package actor

import (
	"context"
	"errors"
)

var (
	ErrUnauthorized = errors.New("unknown or expired session token")
	ErrNotFound     = errors.New("employee not found")
)

type Role string

const (
	// RoleAnggota is a regular cooperative member.
	RoleAnggota Role = "anggota"
	// RolePengurus is a board member who works the approval queue.
	RolePengurus Role = "pengurus"
)

// Actor is a resolved caller identity.
type Actor struct {
	EmployeeID int64  `json:"employee_id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
}

// SessionStore maps opaque bearer tokens to actors. The core only ever
// reads it per request; issuing happens at login.
type SessionStore interface {
	Issue(ctx context.Context, a Actor) (token string, err error)
	Resolve(ctx context.Context, token string) (*Actor, error)
}

// Directory is the employee directory of the accounting system. Queried,
// never mutated.
type Directory interface {
	List(ctx context.Context) ([]Actor, error)
	Get(ctx context.Context, employeeID int64) (*Actor, error)
}
