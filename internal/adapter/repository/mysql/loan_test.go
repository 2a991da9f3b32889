package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "koperasi-loan-service/internal/domain/loan"
	"koperasi-loan-service/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type loanSQLite struct {
	ID               uint64    `gorm:"primaryKey;column:id"`
	LoanID           string    `gorm:"size:32;column:loan_id"`
	EmployeeID       int64     `gorm:"column:employee_id"`
	MemberName       string    `gorm:"column:member_name"`
	Amount           float64   `gorm:"column:amount"`
	TenureMonths     int       `gorm:"column:tenure_months"`
	Status           string    `gorm:"type:text;column:status"` // ← no enum
	ApproverLevel1ID *int64    `gorm:"column:approver_level_1_id"`
	ApproverLevel2ID *int64    `gorm:"column:approver_level_2_id"`
	ApproverLevel3ID *int64    `gorm:"column:approver_level_3_id"`
	ApproverLevel4ID *int64    `gorm:"column:approver_level_4_id"`
	RejectionReason  string    `gorm:"column:rejection_reason"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe model, NOT the domain model.
	if err := db.AutoMigrate(&loanSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(loanID string, employeeID int64, status domain.Status) *domain.Loan {
	return &domain.Loan{
		LoanID:       loanID,
		EmployeeID:   employeeID,
		MemberName:   "Budi",
		Amount:       decimal.NewFromInt(1_000_000),
		TenureMonths: 12,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestLoanRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(id.NewID32(), 7, domain.StatusPendingStaff)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatal("auto id not assigned")
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.EmployeeID != 7 || got.Status != domain.StatusPendingStaff {
		t.Fatalf("got = %+v", got)
	}
	if !got.Amount.Equal(decimal.NewFromInt(1_000_000)) {
		t.Fatalf("amount = %s", got.Amount)
	}
}

func TestLoanRepository_GetNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	if _, err := repo.GetByLoanID(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetByLoanIDForUpdate(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoanRepository_SavePersistsTransition(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	l := makeLoan(id.NewID32(), 7, domain.StatusPendingStaff)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := l.Apply(domain.ActionApprove, 11, ""); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, l.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != domain.StatusPendingManager {
		t.Fatalf("status = %s", got.Status)
	}
	if got.ApproverLevel1ID == nil || *got.ApproverLevel1ID != 11 {
		t.Fatalf("slot1 = %v", got.ApproverLevel1ID)
	}
}

func TestLoanRepository_ListFilter(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	for _, status := range []domain.Status{
		domain.StatusPendingStaff,
		domain.StatusPendingStaff,
		domain.StatusApproved,
	} {
		if err := repo.Create(ctx, makeLoan(id.NewID32(), 7, status)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	all, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}

	pending := domain.StatusPendingStaff
	got, err := repo.List(ctx, &pending)
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(pending) = %d, want 2", len(got))
	}
	for _, l := range got {
		if l.Status != domain.StatusPendingStaff {
			t.Fatalf("filter leaked status %s", l.Status)
		}
	}
}
