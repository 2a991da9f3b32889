package dashboard

import (
	"context"
	"errors"
	"testing"

	"koperasi-loan-service/internal/domain/actor"
	"koperasi-loan-service/internal/domain/ledger"
	"koperasi-loan-service/internal/testutil/actormock"
	"koperasi-loan-service/internal/testutil/ledgermock"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const acct = "110303"

func detailFor(id int64, emp int64, debit, credit int64) *ledger.EntryDetail {
	return &ledger.EntryDetail{
		ID: id,
		Lines: []ledger.DetailLine{{
			AccountNo:  acct,
			EmployeeID: emp,
			Debit:      decimal.NewFromInt(debit),
			Credit:     decimal.NewFromInt(credit),
		}},
	}
}

func TestOutstandingBalance_RecomputedFromLedger(t *testing.T) {
	details := map[int64]*ledger.EntryDetail{
		1: detailFor(1, 7, 100, 0),
		2: detailFor(2, 7, 0, 40),
		3: detailFor(3, 9, 50, 0),
	}
	gw := &ledgermock.Gateway{
		EntriesForAccountFn: func(ctx context.Context, accountNo string) ([]ledger.EntrySummary, error) {
			require.Equal(t, acct, accountNo)
			return []ledger.EntrySummary{{ID: 1}, {ID: 2}, {ID: 3}}, nil
		},
		EntryDetailFn: func(ctx context.Context, id int64) (*ledger.EntryDetail, error) {
			return details[id], nil
		},
	}
	u := NewUsecase(&actormock.Directory{}, gw, acct, zap.NewNop())

	got, err := u.OutstandingBalance(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(60)), "balance = %s", got)

	got, err = u.OutstandingBalance(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "balance = %s", got)
}

func TestOutstandingBalance_ToleratesBadDetail(t *testing.T) {
	gw := &ledgermock.Gateway{
		EntriesForAccountFn: func(ctx context.Context, accountNo string) ([]ledger.EntrySummary, error) {
			return []ledger.EntrySummary{{ID: 1}, {ID: 2}}, nil
		},
		EntryDetailFn: func(ctx context.Context, id int64) (*ledger.EntryDetail, error) {
			if id == 1 {
				return nil, errors.New("truncated response")
			}
			return detailFor(2, 7, 80, 0), nil
		},
	}
	u := NewUsecase(&actormock.Directory{}, gw, acct, zap.NewNop())

	got, err := u.OutstandingBalance(context.Background(), 7)
	require.NoError(t, err, "one bad record must not abort the aggregation")
	assert.True(t, got.Equal(decimal.NewFromInt(80)), "balance = %s", got)
}

func TestOutstandingBalance_ListFailureAborts(t *testing.T) {
	gw := &ledgermock.Gateway{
		EntriesForAccountFn: func(ctx context.Context, accountNo string) ([]ledger.EntrySummary, error) {
			return nil, ledger.ErrUnavailable
		},
	}
	u := NewUsecase(&actormock.Directory{}, gw, acct, zap.NewNop())

	_, err := u.OutstandingBalance(context.Background(), 7)
	assert.ErrorIs(t, err, ledger.ErrUnavailable)
}

func TestEmployeeDashboard(t *testing.T) {
	dir := &actormock.Directory{
		GetFn: func(ctx context.Context, employeeID int64) (*actor.Actor, error) {
			return &actor.Actor{EmployeeID: employeeID, Name: "Budi"}, nil
		},
	}
	gw := &ledgermock.Gateway{
		EntriesForAccountFn: func(ctx context.Context, accountNo string) ([]ledger.EntrySummary, error) {
			return []ledger.EntrySummary{{ID: 1}}, nil
		},
		EntryDetailFn: func(ctx context.Context, id int64) (*ledger.EntryDetail, error) {
			return detailFor(1, 7, 250, 0), nil
		},
	}
	u := NewUsecase(dir, gw, acct, zap.NewNop())

	dto, err := u.EmployeeDashboard(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), dto.EmployeeID)
	assert.Equal(t, "Budi", dto.Name)
	assert.True(t, dto.Utang.Equal(decimal.NewFromInt(250)), "utang = %s", dto.Utang)
}
