package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Totals holds the per-flow-type sums for an aggregation cycle. Values are
// rounded to two decimal places for display; accumulation happens in
// decimal arithmetic so typical currency magnitudes never drift.
type Totals struct {
	In       decimal.Decimal `json:"in"`
	Out      decimal.Decimal `json:"out"`
	Transfer decimal.Decimal `json:"transfer"`
}

// LedgerView is the merged view model for one aggregation cycle. Totals are
// computed over the full merged set for the date range, independent of any
// tab, category, method, or search filter applied to Records.
type LedgerView struct {
	FromDate time.Time           `json:"from_date"`
	ToDate   time.Time           `json:"to_date"`
	Records  []TransactionRecord `json:"records"`
	Totals   Totals              `json:"totals"`
	Cycle    uint64              `json:"cycle"`
}
