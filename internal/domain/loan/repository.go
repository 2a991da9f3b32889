package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row for the duration of the
	// surrounding transaction (SELECT ... FOR UPDATE).
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// List returns all loans, newest first, optionally filtered by status.
	List(ctx context.Context, status *Status) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
