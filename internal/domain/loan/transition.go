package loan

import (
	"strings"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// ParseAction validates an externally supplied action string.
func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionApprove, ActionReject:
		return Action(raw), nil
	}
	return "", ErrInvalidAction
}

// Outcome describes what a transition did to the loan.
type Outcome struct {
	// StampedSlot is the approver slot (1..4) written by an approve,
	// 0 for a reject.
	StampedSlot int
	// PostVoucher is set when the transition landed in APPROVED and a
	// disbursement voucher must be posted to the ledger.
	PostVoucher bool
}

// Apply runs one approval action against the loan, mutating it in place.
// It is pure with respect to collaborators: persistence and the ledger
// side effect are the caller's job. The status only ever moves forward
// along the pipeline or sideways into REJECTED; terminal loans are
// immutable.
func (l *Loan) Apply(action Action, actorID int64, reason string) (Outcome, error) {
	if l.Status.Terminal() {
		return Outcome{}, ErrTerminalState
	}

	switch action {
	case ActionApprove:
		next, ok := l.Status.Next()
		if !ok {
			return Outcome{}, ErrUnknownStatus
		}
		// Advancing out of pipeline position N stamps slot N+1.
		slot := l.Status.stage() + 1
		if err := l.stampApprover(slot, actorID); err != nil {
			return Outcome{}, err
		}
		l.Status = next
		return Outcome{StampedSlot: slot, PostVoucher: next == StatusApproved}, nil

	case ActionReject:
		reason = strings.TrimSpace(reason)
		if reason == "" {
			return Outcome{}, ErrReasonRequired
		}
		l.Status = StatusRejected
		l.RejectionReason = reason
		return Outcome{}, nil
	}

	return Outcome{}, ErrInvalidAction
}
