package ledger

import (
	"testing"

	"siteledger/internal/models"
	"siteledger/internal/testutil"
)

func sortFixture(t *testing.T) []models.TransactionRecord {
	t.Helper()
	return []models.TransactionRecord{
		testutil.Record(t, "a", models.SourceDaily, models.FlowIn, "300", "2024-01-03"),
		testutil.Record(t, "b", models.SourceDaily, models.FlowIn, "100", "2024-01-01"),
		testutil.Record(t, "c", models.SourceDaily, models.FlowIn, "200", "2024-01-02"),
	}
}

func ids(records []models.TransactionRecord) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}

func assertOrder(t *testing.T, got []models.TransactionRecord, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("expected order %v, got %v", want, ids(got))
		}
	}
}

func TestSortRecords(t *testing.T) {
	records := sortFixture(t)

	t.Run("date_asc", func(t *testing.T) {
		assertOrder(t, sortRecords(records, SortDateAsc), "b", "c", "a")
	})

	t.Run("date_desc", func(t *testing.T) {
		assertOrder(t, sortRecords(records, SortDateDesc), "a", "c", "b")
	})

	t.Run("desc_reverses_asc_for_distinct_dates", func(t *testing.T) {
		asc := sortRecords(records, SortDateAsc)
		desc := sortRecords(records, SortDateDesc)
		for i := range asc {
			if asc[i].ID != desc[len(desc)-1-i].ID {
				t.Fatalf("date_desc is not the reverse of date_asc: %v vs %v", ids(asc), ids(desc))
			}
		}
	})

	t.Run("amount_asc", func(t *testing.T) {
		assertOrder(t, sortRecords(records, SortAmountAsc), "b", "c", "a")
	})

	t.Run("amount_desc", func(t *testing.T) {
		assertOrder(t, sortRecords(records, SortAmountDesc), "a", "c", "b")
	})

	t.Run("stable_on_equal_keys", func(t *testing.T) {
		sameDay := []models.TransactionRecord{
			testutil.Record(t, "first", models.SourceDaily, models.FlowIn, "10", "2024-01-01"),
			testutil.Record(t, "second", models.SourceExpense, models.FlowOut, "20", "2024-01-01"),
			testutil.Record(t, "third", models.SourceBillingPayment, models.FlowIn, "30", "2024-01-01"),
		}
		assertOrder(t, sortRecords(sameDay, SortDateAsc), "first", "second", "third")
	})

	t.Run("unknown_option_defaults_to_date_desc", func(t *testing.T) {
		assertOrder(t, sortRecords(records, SortOption("")), "a", "c", "b")
	})

	t.Run("input_not_reordered", func(t *testing.T) {
		_ = sortRecords(records, SortAmountDesc)
		assertOrder(t, records, "a", "b", "c")
	})
}
