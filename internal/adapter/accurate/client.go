// Package accurate is the HTTP client for the Accurate.id accounting
// API. It backs both the Ledger Gateway (journal vouchers) and the
// employee Directory. OAuth code exchange is out of scope: the client is
// handed an already-exchanged access token and open-database session id.
package accurate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"koperasi-loan-service/internal/domain/actor"
	"koperasi-loan-service/internal/domain/ledger"

	"github.com/shopspring/decimal"
)

var ErrNotReady = errors.New("accurate session not configured")

const dateLayout = "02/01/2006" // dd/mm/yyyy, as Accurate expects

type Client struct {
	baseURL     string
	accessToken string
	sessionID   string
	httpClient  *http.Client
}

var (
	_ ledger.Gateway  = (*Client)(nil)
	_ actor.Directory = (*Client)(nil)
)

func NewClient(baseURL, accessToken, sessionID string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		sessionID:   sessionID,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Ready reports whether the client holds the credentials needed to talk
// to Accurate.
func (c *Client) Ready() error {
	if c.accessToken == "" || c.sessionID == "" {
		return ErrNotReady
	}
	return nil
}

// envelope is Accurate's standard response wrapper.
type envelope struct {
	S bool            `json:"s"`
	D json.RawMessage `json:"d"`
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	if err := c.Ready(); err != nil {
		return fmt.Errorf("%w: %v", ledger.ErrUnavailable, err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("X-Session-ID", c.sessionID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ledger.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ledger.ErrUnavailable, path, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ledger.ErrUnavailable, path, err)
	}
	if !env.S {
		return fmt.Errorf("%w: %s reported failure", ledger.ErrUnavailable, path)
	}
	if out != nil && len(env.D) > 0 {
		if err := json.Unmarshal(env.D, out); err != nil {
			return fmt.Errorf("decode %s payload: %w", path, err)
		}
	}
	return nil
}

// ---- employee directory ----

type employeeRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c *Client) List(ctx context.Context) ([]actor.Actor, error) {
	var recs []employeeRecord
	if err := c.call(ctx, http.MethodGet, "/accurate/api/employee/list.do", nil, nil, &recs); err != nil {
		return nil, err
	}
	out := make([]actor.Actor, 0, len(recs))
	for _, r := range recs {
		out = append(out, actor.Actor{EmployeeID: r.ID, Name: r.Name, Role: actor.RoleAnggota})
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, employeeID int64) (*actor.Actor, error) {
	q := url.Values{"id": {fmt.Sprint(employeeID)}}
	var rec employeeRecord
	if err := c.call(ctx, http.MethodGet, "/accurate/api/employee/detail.do", q, nil, &rec); err != nil {
		return nil, err
	}
	if rec.ID == 0 {
		return nil, actor.ErrNotFound
	}
	return &actor.Actor{EmployeeID: rec.ID, Name: rec.Name, Role: actor.RoleAnggota}, nil
}

// ---- journal vouchers ----

type voucherSummary struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
}

func (c *Client) EntriesForAccount(ctx context.Context, accountNo string) ([]ledger.EntrySummary, error) {
	q := url.Values{
		"sp.page":              {"1"},
		"sp.pageSize":          {"200"},
		"filter.accountNo.op":  {"EQUAL"},
		"filter.accountNo.val": {accountNo},
	}
	var recs []voucherSummary
	if err := c.call(ctx, http.MethodGet, "/accurate/api/journal-voucher/list.do", q, nil, &recs); err != nil {
		return nil, err
	}
	out := make([]ledger.EntrySummary, 0, len(recs))
	for _, r := range recs {
		out = append(out, ledger.EntrySummary{ID: r.ID, Number: r.Number})
	}
	return out, nil
}

type voucherDetail struct {
	ID    int64 `json:"id"`
	Lines []struct {
		GLAccount struct {
			No string `json:"no"`
		} `json:"glAccount"`
		EmployeeID   int64   `json:"employeeId"`
		DebitAmount  float64 `json:"debitAmount"`
		CreditAmount float64 `json:"creditAmount"`
	} `json:"detailJournalVoucher"`
}

func (c *Client) EntryDetail(ctx context.Context, id int64) (*ledger.EntryDetail, error) {
	q := url.Values{"id": {fmt.Sprint(id)}}
	var rec voucherDetail
	if err := c.call(ctx, http.MethodGet, "/accurate/api/journal-voucher/detail.do", q, nil, &rec); err != nil {
		return nil, err
	}
	out := &ledger.EntryDetail{ID: rec.ID, Lines: make([]ledger.DetailLine, 0, len(rec.Lines))}
	for _, l := range rec.Lines {
		out.Lines = append(out.Lines, ledger.DetailLine{
			AccountNo:  l.GLAccount.No,
			EmployeeID: l.EmployeeID,
			Debit:      decimal.NewFromFloat(l.DebitAmount),
			Credit:     decimal.NewFromFloat(l.CreditAmount),
		})
	}
	return out, nil
}

type voucherLine struct {
	AccountNo  string  `json:"accountNo"`
	Debit      float64 `json:"debit"`
	Credit     float64 `json:"credit"`
	EmployeeID int64   `json:"employeeId,omitempty"`
}

type voucherPayload struct {
	TransDate   string        `json:"transDate"`
	Description string        `json:"description"`
	Detail      []voucherLine `json:"detail"`
}

func (c *Client) PostVoucher(ctx context.Context, v ledger.Voucher) (*ledger.VoucherReceipt, error) {
	amount := v.Amount.InexactFloat64()
	payload := voucherPayload{
		TransDate:   v.TransDate.Format(dateLayout),
		Description: v.Description,
		Detail: []voucherLine{
			{AccountNo: v.DebitAccount, Debit: amount, Credit: 0, EmployeeID: v.EmployeeID},
			{AccountNo: v.CreditAccount, Debit: 0, Credit: amount},
		},
	}
	var rec voucherSummary
	if err := c.call(ctx, http.MethodPost, "/accurate/api/journal-voucher/save.do", nil, payload, &rec); err != nil {
		return nil, err
	}
	return &ledger.VoucherReceipt{ID: rec.ID, Number: rec.Number}, nil
}
