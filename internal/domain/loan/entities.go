package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound       = errors.New("loan not found")
	ErrTerminalState  = errors.New("loan is in a final state")
	ErrStatusConflict = errors.New("loan status changed since it was read")
	ErrInvalidAction  = errors.New("invalid action")
	ErrReasonRequired = errors.New("rejection requires a reason")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownStatus  = errors.New("unknown loan status")
	ErrSlotOccupied   = errors.New("approver slot already stamped")
)

type Status string

const (
	StatusPendingStaff     Status = "PENDING_STAFF_APPROVAL"
	StatusPendingManager   Status = "PENDING_MANAGER_APPROVAL"
	StatusPendingBendahara Status = "PENDING_BENDAHARA_APPROVAL"
	StatusPendingKetua     Status = "PENDING_KETUA_APPROVAL"
	StatusApproved         Status = "APPROVED"
	StatusRejected         Status = "REJECTED"
)

// pipeline is the fixed approval chain. Position N advances to position
// N+1; advancing out of position N stamps approver slot N+1.
var pipeline = [...]Status{
	StatusPendingStaff,
	StatusPendingManager,
	StatusPendingBendahara,
	StatusPendingKetua,
	StatusApproved,
}

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

// Next returns the fixed successor in the pipeline. ok is false for
// terminal states and unknown values; the table is total over the
// non-terminal pipeline states.
func (s Status) Next() (Status, bool) {
	for i := 0; i < len(pipeline)-1; i++ {
		if pipeline[i] == s {
			return pipeline[i+1], true
		}
	}
	return "", false
}

// stage returns the zero-based pipeline position of s, or -1 for
// REJECTED and unknown values.
func (s Status) stage() int {
	for i, st := range pipeline {
		if st == s {
			return i
		}
	}
	return -1
}

// ParseStatus validates an externally supplied status string.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if s.stage() >= 0 || s == StatusRejected {
		return s, nil
	}
	return "", ErrUnknownStatus
}

type Loan struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID       string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	EmployeeID   int64           `gorm:"index:idx_loans_employee" json:"employee_id"`
	MemberName   string          `gorm:"size:255" json:"member_name"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2)" json:"amount"`
	TenureMonths int             `gorm:"column:tenure_months" json:"tenure_months"`
	Status       Status          `gorm:"type:enum('PENDING_STAFF_APPROVAL','PENDING_MANAGER_APPROVAL','PENDING_BENDAHARA_APPROVAL','PENDING_KETUA_APPROVAL','APPROVED','REJECTED');default:'PENDING_STAFF_APPROVAL'" json:"status"`

	// One slot per pipeline stage, stamped exactly once by the actor whose
	// approval advanced the loan out of that stage.
	ApproverLevel1ID *int64 `gorm:"column:approver_level_1_id" json:"approver_level_1_id,omitempty"`
	ApproverLevel2ID *int64 `gorm:"column:approver_level_2_id" json:"approver_level_2_id,omitempty"`
	ApproverLevel3ID *int64 `gorm:"column:approver_level_3_id" json:"approver_level_3_id,omitempty"`
	ApproverLevel4ID *int64 `gorm:"column:approver_level_4_id" json:"approver_level_4_id,omitempty"`

	RejectionReason string `gorm:"type:text" json:"rejection_reason,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// Approver returns the actor id stamped in slot (1..4), nil if unset.
func (l *Loan) Approver(slot int) *int64 {
	switch slot {
	case 1:
		return l.ApproverLevel1ID
	case 2:
		return l.ApproverLevel2ID
	case 3:
		return l.ApproverLevel3ID
	case 4:
		return l.ApproverLevel4ID
	}
	return nil
}

func (l *Loan) stampApprover(slot int, actorID int64) error {
	if l.Approver(slot) != nil {
		return ErrSlotOccupied
	}
	switch slot {
	case 1:
		l.ApproverLevel1ID = &actorID
	case 2:
		l.ApproverLevel2ID = &actorID
	case 3:
		l.ApproverLevel3ID = &actorID
	case 4:
		l.ApproverLevel4ID = &actorID
	default:
		return ErrSlotOccupied
	}
	return nil
}
