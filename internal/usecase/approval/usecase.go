package approval

import (
	"context"
	"time"

	domainLoan "koperasi-loan-service/internal/domain/loan"
	"koperasi-loan-service/internal/domain/ledger"
	"koperasi-loan-service/internal/domain/uow"
	loanDTO "koperasi-loan-service/internal/usecase/loan"

	"go.uber.org/zap"
)

// Accounts are the fixed GL accounts a disbursement voucher books
// against. Both the posting path and the balance path must use the same
// receivables account.
type Accounts struct {
	Receivable string
	Cash       string
}

type Usecase struct {
	uow      uow.UnitOfWork
	gateway  ledger.Gateway
	accounts Accounts
	log      *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, gw ledger.Gateway, accounts Accounts, log *zap.Logger) *Usecase {
	return &Usecase{uow: tx, gateway: gw, accounts: accounts, log: log}
}

// Apply runs one approve/reject action against a loan. The read-decide-
// write happens inside a row-locked transaction; the ledger post (only
// when the loan lands in APPROVED) happens after commit and is a single
// best-effort attempt. A failed post never rolls back the approval — the
// result carries the ledger outcome so operators can reconcile.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*ResultDTO, error) {
	var (
		applied *domainLoan.Loan
		outcome domainLoan.Outcome
	)

	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if in.ExpectedStatus != nil && *in.ExpectedStatus != l.Status {
			if l.Status.Terminal() {
				return domainLoan.ErrTerminalState
			}
			return domainLoan.ErrStatusConflict
		}

		o, err := l.Apply(in.Action, in.ActorID, in.Reason)
		if err != nil {
			return err
		}
		l.UpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		outcome = o
		applied = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := &ResultDTO{Loan: *loanDTO.ToDTO(applied)}
	if outcome.StampedSlot > 0 {
		u.log.Info("loan advanced",
			zap.String("loan_id", applied.LoanID),
			zap.String("status", string(applied.Status)),
			zap.Int("slot", outcome.StampedSlot),
			zap.Int64("actor_id", in.ActorID),
		)
	} else {
		u.log.Info("loan rejected",
			zap.String("loan_id", applied.LoanID),
			zap.Int64("actor_id", in.ActorID),
		)
	}

	if outcome.PostVoucher {
		res.LedgerAttempted = true
		u.postDisbursement(ctx, applied, res)
	}
	return res, nil
}

func (u *Usecase) postDisbursement(ctx context.Context, l *domainLoan.Loan, res *ResultDTO) {
	// The approval is final once persisted; a caller hanging up must not
	// abandon the post mid-flight.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 15*time.Second)
	defer cancel()

	receipt, err := u.gateway.PostVoucher(ctx, ledger.Voucher{
		TransDate:     time.Now().UTC(),
		Description:   "Loan disbursement for " + l.MemberName,
		Amount:        l.Amount,
		DebitAccount:  u.accounts.Receivable,
		CreditAccount: u.accounts.Cash,
		EmployeeID:    l.EmployeeID,
	})
	if err != nil {
		res.LedgerError = err.Error()
		u.log.Warn("disbursement voucher post failed, loan stays APPROVED pending manual reconciliation",
			zap.String("loan_id", l.LoanID),
			zap.Error(err),
		)
		return
	}
	res.LedgerPosted = true
	u.log.Info("disbursement voucher posted",
		zap.String("loan_id", l.LoanID),
		zap.Int64("voucher_id", receipt.ID),
	)
}
