package loan

import (
	"time"

	"koperasi-loan-service/internal/domain/loan"

	"github.com/shopspring/decimal"
)

type DTO struct {
	LoanID           string          `json:"loan_id"`
	EmployeeID       int64           `json:"employee_id"`
	MemberName       string          `json:"member_name"`
	Amount           decimal.Decimal `json:"amount"`
	TenureMonths     int             `json:"tenure_months"`
	Status           string          `json:"status"`
	ApproverLevel1ID *int64          `json:"approver_level_1_id,omitempty"`
	ApproverLevel2ID *int64          `json:"approver_level_2_id,omitempty"`
	ApproverLevel3ID *int64          `json:"approver_level_3_id,omitempty"`
	ApproverLevel4ID *int64          `json:"approver_level_4_id,omitempty"`
	RejectionReason  string          `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func ToDTO(l *loan.Loan) *DTO {
	return &DTO{
		LoanID:           l.LoanID,
		EmployeeID:       l.EmployeeID,
		MemberName:       l.MemberName,
		Amount:           l.Amount,
		TenureMonths:     l.TenureMonths,
		Status:           string(l.Status),
		ApproverLevel1ID: l.ApproverLevel1ID,
		ApproverLevel2ID: l.ApproverLevel2ID,
		ApproverLevel3ID: l.ApproverLevel3ID,
		ApproverLevel4ID: l.ApproverLevel4ID,
		RejectionReason:  l.RejectionReason,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
