package auth

import (
	"context"
	"fmt"
	"strings"

	"koperasi-loan-service/internal/domain/actor"

	"go.uber.org/zap"
)

type Usecase struct {
	directory actor.Directory
	sessions  actor.SessionStore
	log       *zap.Logger
}

func NewUsecase(directory actor.Directory, sessions actor.SessionStore, log *zap.Logger) *Usecase {
	return &Usecase{directory: directory, sessions: sessions, log: log}
}

type LoginDTO struct {
	Token    string      `json:"token"`
	UserType actor.Role  `json:"user_type"`
	User     actor.Actor `json:"user"`
}

// Login matches the username against the employee directory and issues a
// session token. The reserved "admin" user maps to the board actor with
// employee id 0 and never hits the directory.
func (u *Usecase) Login(ctx context.Context, username string) (*LoginDTO, error) {
	if strings.EqualFold(username, "admin") {
		a := actor.Actor{EmployeeID: 0, Name: "Admin", Role: actor.RolePengurus}
		token, err := u.sessions.Issue(ctx, a)
		if err != nil {
			return nil, err
		}
		u.log.Info("session issued for admin")
		return &LoginDTO{Token: token, UserType: a.Role, User: a}, nil
	}

	employees, err := u.directory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("employee lookup: %w", err)
	}
	for _, emp := range employees {
		if strings.EqualFold(emp.Name, username) {
			emp.Role = actor.RoleAnggota
			token, err := u.sessions.Issue(ctx, emp)
			if err != nil {
				return nil, err
			}
			u.log.Info("session issued", zap.Int64("employee_id", emp.EmployeeID))
			return &LoginDTO{Token: token, UserType: emp.Role, User: emp}, nil
		}
	}
	return nil, actor.ErrUnauthorized
}

// Resolve maps a bearer token back to its actor.
func (u *Usecase) Resolve(ctx context.Context, token string) (*actor.Actor, error) {
	return u.sessions.Resolve(ctx, token)
}
