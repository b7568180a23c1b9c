package ledger

import (
	"strings"

	"siteledger/internal/models"
)

// TabAll is the tab value that passes every flow type.
const TabAll = "all"

// Filter holds the independent list predicates. An empty criterion is a
// no-op; set criteria compose by logical AND.
type Filter struct {
	Tab      string
	Category string
	Method   string
	Search   string
}

// Apply returns a new slice containing the records that pass every set
// predicate, preserving input order. The input is never modified.
func (f Filter) Apply(records []models.TransactionRecord) []models.TransactionRecord {
	out := make([]models.TransactionRecord, 0, len(records))
	for _, rec := range records {
		if f.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (f Filter) matches(rec models.TransactionRecord) bool {
	if f.Tab != "" && f.Tab != TabAll && string(rec.FlowType) != f.Tab {
		return false
	}
	if f.Category != "" && !strings.EqualFold(f.Category, rec.Category) {
		return false
	}
	if f.Method != "" && !strings.EqualFold(f.Method, rec.Method) {
		return false
	}
	if f.Search != "" && !searchMatches(rec, f.Search) {
		return false
	}
	return true
}

// searchMatches reports whether the query appears, case-insensitively, in
// any of the record's display fields. A match on one field is sufficient.
func searchMatches(rec models.TransactionRecord, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{rec.CounterpartyFrom, rec.CounterpartyTo, rec.Remark, rec.Category} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
