package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"siteledger/internal/models"
)

// Date parses a YYYY-MM-DD test date.
func Date(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return parsed
}

// Amount parses a decimal test amount.
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad test amount %q: %v", s, err)
	}
	return d
}

// Record builds a normalized transaction record for pipeline tests.
func Record(t *testing.T, id string, source models.Source, flow models.FlowType, amount, date string) models.TransactionRecord {
	t.Helper()
	return models.TransactionRecord{
		ID:       id,
		Date:     Date(t, date),
		Amount:   Amount(t, amount),
		FlowType: flow,
		Category: "General",
		Method:   "cash",
		Source:   source,
	}
}
