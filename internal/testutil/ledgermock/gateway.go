package ledgermock

import (
	"context"

	domain "koperasi-loan-service/internal/domain/ledger"
)

// Gateway is a function-backed mock that satisfies ledger.Gateway.
type Gateway struct {
	EntriesForAccountFn func(ctx context.Context, accountNo string) ([]domain.EntrySummary, error)
	EntryDetailFn       func(ctx context.Context, id int64) (*domain.EntryDetail, error)
	PostVoucherFn       func(ctx context.Context, v domain.Voucher) (*domain.VoucherReceipt, error)

	// PostedVouchers records every PostVoucher call for assertions.
	PostedVouchers []domain.Voucher
}

var _ domain.Gateway = (*Gateway)(nil)

func (m *Gateway) EntriesForAccount(ctx context.Context, accountNo string) ([]domain.EntrySummary, error) {
	if m.EntriesForAccountFn != nil {
		return m.EntriesForAccountFn(ctx, accountNo)
	}
	return nil, nil
}

func (m *Gateway) EntryDetail(ctx context.Context, id int64) (*domain.EntryDetail, error) {
	if m.EntryDetailFn != nil {
		return m.EntryDetailFn(ctx, id)
	}
	return nil, nil
}

func (m *Gateway) PostVoucher(ctx context.Context, v domain.Voucher) (*domain.VoucherReceipt, error) {
	m.PostedVouchers = append(m.PostedVouchers, v)
	if m.PostVoucherFn != nil {
		return m.PostVoucherFn(ctx, v)
	}
	return &domain.VoucherReceipt{ID: 1, Number: "JV-1"}, nil
}
