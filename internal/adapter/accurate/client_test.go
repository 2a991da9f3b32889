package accurate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"koperasi-loan-service/internal/domain/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token", "sess-1")
}

func requireAuthHeaders(t *testing.T, r *http.Request) {
	t.Helper()
	require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
	require.Equal(t, "sess-1", r.Header.Get("X-Session-ID"))
}

func TestClient_NotReady(t *testing.T) {
	c := NewClient("http://example.invalid", "", "")
	require.Error(t, c.Ready())

	_, err := c.EntriesForAccount(context.Background(), "110303")
	assert.ErrorIs(t, err, ledger.ErrUnavailable)
}

func TestEntriesForAccount_QueryShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requireAuthHeaders(t, r)
		assert.Equal(t, "/accurate/api/journal-voucher/list.do", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "EQUAL", q.Get("filter.accountNo.op"))
		assert.Equal(t, "110303", q.Get("filter.accountNo.val"))
		assert.Equal(t, "1", q.Get("sp.page"))
		assert.Equal(t, "200", q.Get("sp.pageSize"))
		_, _ = w.Write([]byte(`{"s":true,"d":[{"id":101,"number":"JV-101"},{"id":102,"number":"JV-102"}]}`))
	})

	entries, err := c.EntriesForAccount(context.Background(), "110303")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(101), entries[0].ID)
	assert.Equal(t, "JV-102", entries[1].Number)
}

func TestEntryDetail_ParsesLines(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requireAuthHeaders(t, r)
		assert.Equal(t, "/accurate/api/journal-voucher/detail.do", r.URL.Path)
		assert.Equal(t, "101", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`{"s":true,"d":{"id":101,"detailJournalVoucher":[
			{"glAccount":{"no":"110303"},"employeeId":7,"debitAmount":1000000,"creditAmount":0},
			{"glAccount":{"no":"123456789"},"debitAmount":0,"creditAmount":1000000}
		]}}`))
	})

	d, err := c.EntryDetail(context.Background(), 101)
	require.NoError(t, err)
	require.Len(t, d.Lines, 2)
	assert.Equal(t, "110303", d.Lines[0].AccountNo)
	assert.Equal(t, int64(7), d.Lines[0].EmployeeID)
	assert.True(t, d.Lines[0].Debit.Equal(decimal.NewFromInt(1_000_000)))
	assert.True(t, d.Lines[1].Credit.Equal(decimal.NewFromInt(1_000_000)))
}

func TestPostVoucher_PayloadShape(t *testing.T) {
	var got voucherPayload
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requireAuthHeaders(t, r)
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/accurate/api/journal-voucher/save.do", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"s":true,"d":{"id":555,"number":"JV-555"}}`))
	})

	receipt, err := c.PostVoucher(context.Background(), ledger.Voucher{
		TransDate:     time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Description:   "Loan disbursement for Budi",
		Amount:        decimal.NewFromInt(1_000_000),
		DebitAccount:  "110303",
		CreditAccount: "123456789",
		EmployeeID:    7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(555), receipt.ID)

	assert.Equal(t, "30/08/2026", got.TransDate, "Accurate expects dd/mm/yyyy")
	require.Len(t, got.Detail, 2)
	assert.Equal(t, voucherLine{AccountNo: "110303", Debit: 1_000_000, Credit: 0, EmployeeID: 7}, got.Detail[0])
	assert.Equal(t, voucherLine{AccountNo: "123456789", Debit: 0, Credit: 1_000_000}, got.Detail[1])
}

func TestClient_UpstreamErrors(t *testing.T) {
	t.Run("http 500", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := c.EntriesForAccount(context.Background(), "110303")
		assert.ErrorIs(t, err, ledger.ErrUnavailable)
	})
	t.Run("envelope failure", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"s":false}`))
		})
		_, err := c.PostVoucher(context.Background(), ledger.Voucher{Amount: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, ledger.ErrUnavailable)
	})
	t.Run("connection refused", func(t *testing.T) {
		c := NewClient("http://127.0.0.1:1", "tok", "sess")
		_, err := c.EntryDetail(context.Background(), 1)
		if !errors.Is(err, ledger.ErrUnavailable) {
			t.Fatalf("err = %v, want ErrUnavailable", err)
		}
	})
}

func TestEmployeeDirectory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requireAuthHeaders(t, r)
		switch r.URL.Path {
		case "/accurate/api/employee/list.do":
			_, _ = w.Write([]byte(`{"s":true,"d":[{"id":7,"name":"Budi Santoso"},{"id":9,"name":"Siti Rahma"}]}`))
		case "/accurate/api/employee/detail.do":
			assert.Equal(t, "7", r.URL.Query().Get("id"))
			_, _ = w.Write([]byte(`{"s":true,"d":{"id":7,"name":"Budi Santoso"}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	employees, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Siti Rahma", employees[1].Name)

	emp, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), emp.EmployeeID)
	assert.Equal(t, "Budi Santoso", emp.Name)
}
