package dashboard

import (
	"context"
	"fmt"

	"koperasi-loan-service/internal/domain/actor"
	"koperasi-loan-service/internal/domain/ledger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Usecase struct {
	directory         actor.Directory
	gateway           ledger.Gateway
	receivableAccount string
	log               *zap.Logger
}

func NewUsecase(directory actor.Directory, gw ledger.Gateway, receivableAccount string, log *zap.Logger) *Usecase {
	return &Usecase{directory: directory, gateway: gw, receivableAccount: receivableAccount, log: log}
}

type DTO struct {
	EmployeeID int64           `json:"employee_id"`
	Name       string          `json:"name"`
	Utang      decimal.Decimal `json:"utang"`
}

// EmployeeDashboard combines the directory record with the member's
// outstanding loan balance.
func (u *Usecase) EmployeeDashboard(ctx context.Context, employeeID int64) (*DTO, error) {
	member, err := u.directory.Get(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("employee detail: %w", err)
	}
	balance, err := u.OutstandingBalance(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return &DTO{EmployeeID: member.EmployeeID, Name: member.Name, Utang: balance}, nil
}

// OutstandingBalance recomputes the member's receivable balance from the
// ledger on every call; it is never cached or stored on the loan. A
// voucher whose detail cannot be fetched contributes zero rather than
// failing the whole aggregation.
func (u *Usecase) OutstandingBalance(ctx context.Context, employeeID int64) (decimal.Decimal, error) {
	entries, err := u.gateway.EntriesForAccount(ctx, u.receivableAccount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("list receivable entries: %w", err)
	}

	details := make([]*ledger.EntryDetail, 0, len(entries))
	for _, e := range entries {
		d, err := u.gateway.EntryDetail(ctx, e.ID)
		if err != nil {
			u.log.Warn("skipping unreadable journal voucher",
				zap.Int64("voucher_id", e.ID),
				zap.Error(err),
			)
			continue
		}
		details = append(details, d)
	}

	return ledger.OutstandingBalance(details, u.receivableAccount, employeeID), nil
}
