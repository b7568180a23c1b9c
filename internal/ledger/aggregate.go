package ledger

import (
	"siteledger/internal/models"
)

// totals sums amounts per flow type over the full merged collection. Totals
// always reflect the whole date range: they are computed once, after merge,
// before any filter or sort is applied. Sums are rounded to two decimal
// places for display; accumulation is exact decimal arithmetic.
func totals(records []models.TransactionRecord) models.Totals {
	var t models.Totals
	for _, rec := range records {
		switch rec.FlowType {
		case models.FlowIn:
			t.In = t.In.Add(rec.Amount)
		case models.FlowOut:
			t.Out = t.Out.Add(rec.Amount)
		case models.FlowTransfer:
			t.Transfer = t.Transfer.Add(rec.Amount)
		}
	}
	t.In = t.In.Round(2)
	t.Out = t.Out.Round(2)
	t.Transfer = t.Transfer.Round(2)
	return t
}
