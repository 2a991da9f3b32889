package approval

import (
	domainLoan "koperasi-loan-service/internal/domain/loan"
	loanDTO "koperasi-loan-service/internal/usecase/loan"
)

type ApplyInput struct {
	LoanID  string
	Action  domainLoan.Action
	ActorID int64
	Reason  string
	// ExpectedStatus, when set, makes the transition conditional: a loan
	// whose status moved since the caller last read it fails with
	// ErrStatusConflict instead of advancing off the newer state.
	ExpectedStatus *domainLoan.Status
}

type ResultDTO struct {
	Loan loanDTO.DTO `json:"loan"`
	// LedgerAttempted / LedgerPosted report the disbursement side effect.
	// LedgerAttempted && !LedgerPosted means the approval persisted but
	// the voucher needs manual posting; LedgerError carries the cause.
	LedgerAttempted bool   `json:"ledger_attempted"`
	LedgerPosted    bool   `json:"ledger_posted"`
	LedgerError     string `json:"ledger_error,omitempty"`
}
