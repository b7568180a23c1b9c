package ledger

import (
	"sort"

	"siteledger/internal/models"
)

// SortOption names one of the four supported orderings.
type SortOption string

const (
	SortDateAsc    SortOption = "date_asc"
	SortDateDesc   SortOption = "date_desc"
	SortAmountAsc  SortOption = "amount_asc"
	SortAmountDesc SortOption = "amount_desc"
)

// Valid reports whether the option is one of the known orderings.
func (o SortOption) Valid() bool {
	switch o {
	case SortDateAsc, SortDateDesc, SortAmountAsc, SortAmountDesc:
		return true
	}
	return false
}

// sortRecords returns a new slice ordered by the given option. The sort is
// stable: records with equal keys keep their relative merged order. An
// unrecognized option falls back to date descending, the default view.
func sortRecords(records []models.TransactionRecord, opt SortOption) []models.TransactionRecord {
	out := make([]models.TransactionRecord, len(records))
	copy(out, records)

	switch opt {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	case SortAmountAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.LessThan(out[j].Amount) })
	case SortAmountDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Amount.GreaterThan(out[j].Amount) })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	}

	return out
}
