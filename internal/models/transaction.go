package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlowType classifies a transaction as money-in, money-out, or an internal
// transfer between accounts.
type FlowType string

const (
	FlowIn       FlowType = "in"
	FlowOut      FlowType = "out"
	FlowTransfer FlowType = "transfer"
)

// Valid reports whether the flow type is one of the known values.
func (f FlowType) Valid() bool {
	switch f {
	case FlowIn, FlowOut, FlowTransfer:
		return true
	}
	return false
}

// Source identifies which upstream collection produced a record.
type Source string

const (
	SourceDaily              Source = "daily"
	SourceBillingPayment     Source = "billingPayment"
	SourceCustomerPayment    Source = "customerPayment"
	SourceExpense            Source = "expense"
	SourcePurchasePayment    Source = "purchasePayment"
	SourceTransportPayment   Source = "transportPayment"
	SourceProjectTransaction Source = "projectTransaction"
)

// TransactionRecord is the common shape every upstream payload is normalized
// into before merging. Records are never mutated after normalization;
// filtering and sorting produce new slices over the same records.
type TransactionRecord struct {
	ID               string          `json:"id"`
	Date             time.Time       `json:"date"`
	Amount           decimal.Decimal `json:"amount"`
	FlowType         FlowType        `json:"flow_type"`
	CounterpartyFrom string          `json:"counterparty_from,omitempty"`
	CounterpartyTo   string          `json:"counterparty_to,omitempty"`
	Category         string          `json:"category"`
	Method           string          `json:"method"`
	Remark           string          `json:"remark,omitempty"`
	Source           Source          `json:"source"`
}

// Deletable reports whether a delete action is permitted for this record.
// Only entries owned by the daily ledger can be deleted through this service;
// every other source is read-only here.
func (r TransactionRecord) Deletable() bool {
	return r.Source == SourceDaily
}
