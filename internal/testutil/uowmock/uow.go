package uowmock

import (
	"context"
	"errors"
	"sync"

	"koperasi-loan-service/internal/domain/loan"
	"koperasi-loan-service/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}

// InMemory is a UnitOfWork over a shared in-memory loan, serialized with
// a mutex the way the real implementation serializes with a row lock.
// Concurrency tests drive two goroutines through it.
type InMemory struct {
	mu    sync.Mutex
	Loans map[string]*loan.Loan
	Repo  loan.Repository
}

var _ uow.UnitOfWork = (*InMemory)(nil)

func NewInMemory(repo loan.Repository, loans ...*loan.Loan) *InMemory {
	m := &InMemory{Loans: map[string]*loan.Loan{}, Repo: repo}
	for _, l := range loans {
		m.Loans[l.LoanID] = l
	}
	return m
}

func (m *InMemory) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(uow.Repos{Loans: m.Repo})
}

func (m *InMemory) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.Loans[loanID]
	if !ok {
		return loan.ErrNotFound
	}
	return fn(uow.Repos{Loans: m.Repo}, l)
}
