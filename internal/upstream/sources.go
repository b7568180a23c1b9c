package upstream

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Raw payload shapes as the back office reports them. Field names follow the
// upstream JSON; normalization into the common record shape happens in the
// ledger package, not here.

// RawDailyTransaction is a direct ledger entry.
type RawDailyTransaction struct {
	ID          string          `json:"_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	PaymentFrom string          `json:"paymentFrom"`
	PaymentTo   string          `json:"paymentTo"`
	Category    string          `json:"category"`
	Method      string          `json:"method"`
	Remark      string          `json:"remark"`
}

// RawBillPayment is a payment recorded against a bill.
type RawBillPayment struct {
	ID           string          `json:"_id"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Method       string          `json:"method"`
	Remark       string          `json:"remark"`
	CustomerName string          `json:"customerName"`
	Category     string          `json:"category"`
}

// RawOtherExpense is a miscellaneous expense reported alongside bill payments.
type RawOtherExpense struct {
	ID       string          `json:"_id"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method"`
	Remark   string          `json:"remark"`
	Category string          `json:"category"`
}

// RawBillPaymentsPayload is the combined billing payload: bill payments and
// other expenses arrive from the same endpoint.
type RawBillPaymentsPayload struct {
	Payments      []RawBillPayment  `json:"payments"`
	OtherExpenses []RawOtherExpense `json:"otherExpenses"`
}

// RawNestedPayment is one payment inside a per-counterparty array.
type RawNestedPayment struct {
	ID       string          `json:"_id"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method"`
	Remark   string          `json:"remark"`
	Category string          `json:"category"`
}

// RawCustomerDaily groups a customer's payments for the range.
type RawCustomerDaily struct {
	CustomerID   string             `json:"_id"`
	CustomerName string             `json:"customerName"`
	Payments     []RawNestedPayment `json:"payments"`
}

// RawSellerDaily groups a seller's purchase payments for the range.
type RawSellerDaily struct {
	SellerID   string             `json:"_id"`
	SellerName string             `json:"sellerName"`
	Payments   []RawNestedPayment `json:"payments"`
}

// RawTransportDaily groups a transporter's payments for the range.
type RawTransportDaily struct {
	TransportID   string             `json:"_id"`
	TransportName string             `json:"transportName"`
	Payments      []RawNestedPayment `json:"payments"`
}

// RawProjectTransaction is a project-level transaction.
type RawProjectTransaction struct {
	ID          string          `json:"_id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Method      string          `json:"method"`
	Remark      string          `json:"remark"`
	ProjectName string          `json:"projectName"`
}

// RawAccount is one entry of the account id-to-name lookup.
type RawAccount struct {
	AccountID   string `json:"accountId"`
	AccountName string `json:"accountName"`
}

// RawCategory is one ledger category.
type RawCategory struct {
	Name string `json:"name"`
}

// FetchDailyTransactions lists direct ledger entries for the range.
func (c *Client) FetchDailyTransactions(ctx context.Context, from, to time.Time) ([]RawDailyTransaction, error) {
	var out []RawDailyTransaction
	err := c.getJSON(ctx, "/api/daily/transactions", dateRangeQuery(from, to), &out)
	return out, err
}

// FetchBillPayments lists bill payments and other expenses for the range.
func (c *Client) FetchBillPayments(ctx context.Context, from, to time.Time) (RawBillPaymentsPayload, error) {
	var out RawBillPaymentsPayload
	err := c.getJSON(ctx, "/api/daily/allbill/payments", dateRangeQuery(from, to), &out)
	return out, err
}

// FetchCustomerPayments lists per-customer nested payments for the range.
func (c *Client) FetchCustomerPayments(ctx context.Context, from, to time.Time) ([]RawCustomerDaily, error) {
	var out []RawCustomerDaily
	err := c.getJSON(ctx, "/api/customer/daily/payments", dateRangeQuery(from, to), &out)
	return out, err
}

// FetchSellerPayments lists per-seller nested purchase payments for the range.
func (c *Client) FetchSellerPayments(ctx context.Context, from, to time.Time) ([]RawSellerDaily, error) {
	var out []RawSellerDaily
	err := c.getJSON(ctx, "/api/seller/daily/payments", dateRangeQuery(from, to), &out)
	return out, err
}

// FetchTransportPayments lists per-transporter nested payments for the range.
func (c *Client) FetchTransportPayments(ctx context.Context, from, to time.Time) ([]RawTransportDaily, error) {
	var out []RawTransportDaily
	err := c.getJSON(ctx, "/api/transportpayments/daily/payments", dateRangeQuery(from, to), &out)
	return out, err
}

// FetchProjectTransactions lists project-level transactions for the range.
func (c *Client) FetchProjectTransactions(ctx context.Context, from, to time.Time) ([]RawProjectTransaction, error) {
	var out []RawProjectTransaction
	err := c.getJSON(ctx, "/api/projects/project/all-transactions", dateRangeQuery(from, to), &out)
	return out, err
}

// FetchAccounts lists the account id-to-name lookup table.
func (c *Client) FetchAccounts(ctx context.Context) ([]RawAccount, error) {
	var out []RawAccount
	err := c.getJSON(ctx, "/api/accounts/allaccounts", nil, &out)
	return out, err
}

// FetchCategories lists the ledger categories.
func (c *Client) FetchCategories(ctx context.Context) ([]RawCategory, error) {
	var out []RawCategory
	err := c.getJSON(ctx, "/api/daily/transactions/categories", nil, &out)
	return out, err
}
