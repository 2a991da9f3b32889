package loan

import (
	"context"
	"fmt"
	"time"

	"koperasi-loan-service/internal/domain/actor"
	"koperasi-loan-service/internal/domain/loan"
	"koperasi-loan-service/pkg/id"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Usecase struct {
	repo      loan.Repository
	directory actor.Directory
	log       *zap.Logger
}

func NewUsecase(repo loan.Repository, directory actor.Directory, log *zap.Logger) *Usecase {
	return &Usecase{repo: repo, directory: directory, log: log}
}

type SubmitInput struct {
	EmployeeID   int64
	Amount       decimal.Decimal
	TenureMonths int
}

// Submit creates a loan application in the first pipeline stage. The
// member name is snapshotted from the employee directory at submission
// time, never taken from the caller.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*DTO, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", loan.ErrInvalidInput)
	}
	if in.TenureMonths <= 0 {
		return nil, fmt.Errorf("tenure must be positive: %w", loan.ErrInvalidInput)
	}

	member, err := u.directory.Get(ctx, in.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("resolve employee %d: %w", in.EmployeeID, err)
	}

	l := &loan.Loan{
		LoanID:       id.NewID32(),
		EmployeeID:   in.EmployeeID,
		MemberName:   member.Name,
		Amount:       in.Amount,
		TenureMonths: in.TenureMonths,
		Status:       loan.StatusPendingStaff,
		CreatedAt:    time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	u.log.Info("loan application submitted",
		zap.String("loan_id", l.LoanID),
		zap.Int64("employee_id", l.EmployeeID),
		zap.String("amount", l.Amount.String()),
	)
	return ToDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*DTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return ToDTO(l), nil
}

// List returns all applications, optionally filtered by status.
// statusFilter == "" means no filter.
func (u *Usecase) List(ctx context.Context, statusFilter string) ([]DTO, error) {
	var status *loan.Status
	if statusFilter != "" {
		s, err := loan.ParseStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		status = &s
	}

	loans, err := u.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]DTO, 0, len(loans))
	for i := range loans {
		out = append(out, *ToDTO(&loans[i]))
	}
	return out, nil
}
