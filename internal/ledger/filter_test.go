package ledger

import (
	"testing"

	"siteledger/internal/models"
	"siteledger/internal/testutil"
)

func filterFixture(t *testing.T) []models.TransactionRecord {
	t.Helper()

	vendorPayment := testutil.Record(t, "s1", models.SourcePurchasePayment, models.FlowOut, "80", "2024-01-02")
	vendorPayment.CounterpartyTo = "Vendor A"
	vendorPayment.Category = "Purchase Payment"

	expense1 := testutil.Record(t, "e1", models.SourceExpense, models.FlowOut, "40", "2024-01-01")
	expense1.Category = "Other Expense"
	expense2 := testutil.Record(t, "e2", models.SourceExpense, models.FlowOut, "15", "2024-01-03")
	expense2.Category = "Other Expense"

	billing := testutil.Record(t, "b1", models.SourceBillingPayment, models.FlowIn, "250", "2024-01-02")
	billing.Category = "Billing Payment"
	billing.Method = "bank"

	transfer := testutil.Record(t, "d1", models.SourceDaily, models.FlowTransfer, "500", "2024-01-04")
	transfer.Remark = "month-end balancing"

	return []models.TransactionRecord{vendorPayment, expense1, expense2, billing, transfer}
}

func TestFilterApply(t *testing.T) {
	records := filterFixture(t)

	t.Run("unset_filter_passes_all", func(t *testing.T) {
		out := Filter{}.Apply(records)
		if len(out) != len(records) {
			t.Errorf("expected %d records, got %d", len(records), len(out))
		}
	})

	t.Run("tab_all_passes_all", func(t *testing.T) {
		out := Filter{Tab: TabAll}.Apply(records)
		if len(out) != len(records) {
			t.Errorf("expected %d records, got %d", len(records), len(out))
		}
	})

	t.Run("tab_filters_flow_type", func(t *testing.T) {
		out := Filter{Tab: "out"}.Apply(records)
		if len(out) != 3 {
			t.Fatalf("expected 3 out records, got %d", len(out))
		}
		for _, rec := range out {
			if rec.FlowType != models.FlowOut {
				t.Errorf("record %s has flow %s", rec.ID, rec.FlowType)
			}
		}
	})

	t.Run("category_exact_case_insensitive", func(t *testing.T) {
		out := Filter{Category: "other expense"}.Apply(records)
		if len(out) != 2 {
			t.Fatalf("expected exactly 2 expense records, got %d", len(out))
		}
		if out[0].ID != "e1" || out[1].ID != "e2" {
			t.Errorf("expected e1,e2 got %s,%s", out[0].ID, out[1].ID)
		}
	})

	t.Run("method_filter", func(t *testing.T) {
		out := Filter{Method: "BANK"}.Apply(records)
		if len(out) != 1 || out[0].ID != "b1" {
			t.Errorf("expected only b1, got %v", out)
		}
	})

	t.Run("search_matches_any_field", func(t *testing.T) {
		out := Filter{Search: "vendor"}.Apply(records)
		if len(out) != 1 || out[0].ID != "s1" {
			t.Fatalf("expected only the vendor payment, got %d records", len(out))
		}

		out = Filter{Search: "balancing"}.Apply(records)
		if len(out) != 1 || out[0].ID != "d1" {
			t.Errorf("expected remark match on d1, got %d records", len(out))
		}

		out = Filter{Search: "no such text"}.Apply(records)
		if len(out) != 0 {
			t.Errorf("expected no matches, got %d", len(out))
		}
	})

	t.Run("filters_compose_with_and", func(t *testing.T) {
		out := Filter{Tab: "out", Category: "Other Expense", Search: "general"}.Apply(records)
		if len(out) != 0 {
			t.Errorf("expected no records for conflicting criteria, got %d", len(out))
		}

		out = Filter{Tab: "out", Category: "Purchase Payment"}.Apply(records)
		if len(out) != 1 || out[0].ID != "s1" {
			t.Errorf("expected only s1, got %d records", len(out))
		}
	})

	t.Run("input_not_mutated", func(t *testing.T) {
		before := records[0].ID
		_ = Filter{Tab: "in"}.Apply(records)
		if records[0].ID != before {
			t.Error("filter mutated its input")
		}
	})
}
