package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUnavailable = errors.New("ledger gateway unavailable")

// EntrySummary is one journal voucher as returned by a list query.
type EntrySummary struct {
	ID     int64
	Number string
}

// DetailLine is one debit/credit line inside a journal voucher.
type DetailLine struct {
	AccountNo  string
	EmployeeID int64
	Debit      decimal.Decimal
	Credit     decimal.Decimal
}

// EntryDetail is the full journal voucher.
type EntryDetail struct {
	ID    int64
	Lines []DetailLine
}

// Voucher is a disbursement to post: a debit to the receivables account
// paired with a matching credit to the cash account.
type Voucher struct {
	TransDate     time.Time
	Description   string
	Amount        decimal.Decimal
	DebitAccount  string
	CreditAccount string
	EmployeeID    int64
}

type VoucherReceipt struct {
	ID     int64
	Number string
}

// Gateway is the external accounting system's journal subsystem. Vouchers
// are appended, never amended; posting is single-attempt from the core's
// side.
type Gateway interface {
	EntriesForAccount(ctx context.Context, accountNo string) ([]EntrySummary, error)
	EntryDetail(ctx context.Context, id int64) (*EntryDetail, error)
	PostVoucher(ctx context.Context, v Voucher) (*VoucherReceipt, error)
}
