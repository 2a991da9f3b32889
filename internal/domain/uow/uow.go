package uow

import (
	"context"

	"koperasi-loan-service/internal/domain/loan"
)

type Repos struct {
	Loans loan.Repository
}

// UnitOfWork scopes a read-decide-write sequence to one transaction.
// WithinLoanTx locks the loan row up front so transitions on the same
// loan are serialized; different loans proceed in parallel.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
