package upstream

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CreateEntryRequest is the payload for a new direct ledger entry.
type CreateEntryRequest struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	PaymentFrom string          `json:"paymentFrom,omitempty"`
	PaymentTo   string          `json:"paymentTo,omitempty"`
	Category    string          `json:"category"`
	Method      string          `json:"method"`
	Remark      string          `json:"remark,omitempty"`
}

// CreateTransferRequest is the payload for a new transfer entry.
type CreateTransferRequest struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentFrom string          `json:"paymentFrom"`
	PaymentTo   string          `json:"paymentTo"`
	Remark      string          `json:"remark,omitempty"`
}

// ReportRequest is the payload for server-rendered report generation.
type ReportRequest struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

// CreateTransaction creates a direct ledger entry upstream and returns the
// stored record.
func (c *Client) CreateTransaction(ctx context.Context, req CreateEntryRequest) (RawDailyTransaction, error) {
	var out RawDailyTransaction
	err := c.postJSON(ctx, "/api/daily/transactions", req, &out)
	return out, err
}

// CreateTransfer creates a transfer entry upstream.
func (c *Client) CreateTransfer(ctx context.Context, req CreateTransferRequest) (RawDailyTransaction, error) {
	var out RawDailyTransaction
	err := c.postJSON(ctx, "/api/daily/trans/transfer", req, &out)
	return out, err
}

// CreateCategory appends a category to the ledger's category list.
func (c *Client) CreateCategory(ctx context.Context, name string) (RawCategory, error) {
	var out RawCategory
	err := c.postJSON(ctx, "/api/daily/transactions/categories", RawCategory{Name: name}, &out)
	return out, err
}

// DeleteTransaction deletes a direct ledger entry by id.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/daily/transactions/"+id)
}

// GenerateReport asks the back office for a server-rendered HTML report for
// the range and relays the document bytes unchanged.
func (c *Client) GenerateReport(ctx context.Context, from, to time.Time) ([]byte, error) {
	req := ReportRequest{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
	}
	return c.postRaw(ctx, "/api/print/daily/generate-report", req)
}
