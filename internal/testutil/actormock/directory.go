package actormock

import (
	"context"

	domain "koperasi-loan-service/internal/domain/actor"
)

// Directory is a function-backed mock that satisfies actor.Directory.
type Directory struct {
	ListFn func(ctx context.Context) ([]domain.Actor, error)
	GetFn  func(ctx context.Context, employeeID int64) (*domain.Actor, error)
}

var _ domain.Directory = (*Directory)(nil)

func (m *Directory) List(ctx context.Context) ([]domain.Actor, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Directory) Get(ctx context.Context, employeeID int64) (*domain.Actor, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, employeeID)
	}
	return nil, domain.ErrNotFound
}

// Sessions is a map-backed mock that satisfies actor.SessionStore.
type Sessions struct {
	IssueFn   func(ctx context.Context, a domain.Actor) (string, error)
	ResolveFn func(ctx context.Context, token string) (*domain.Actor, error)
}

var _ domain.SessionStore = (*Sessions)(nil)

func (m *Sessions) Issue(ctx context.Context, a domain.Actor) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, a)
	}
	return "tok", nil
}

func (m *Sessions) Resolve(ctx context.Context, token string) (*domain.Actor, error) {
	if m.ResolveFn != nil {
		return m.ResolveFn(ctx, token)
	}
	return nil, domain.ErrUnauthorized
}
