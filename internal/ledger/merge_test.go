package ledger

import (
	"testing"

	"siteledger/internal/models"
	"siteledger/internal/testutil"
)

func TestMerge(t *testing.T) {
	t.Run("every_id_appears_once", func(t *testing.T) {
		bySource := map[models.Source][]models.TransactionRecord{
			models.SourceDaily: {
				testutil.Record(t, "d1", models.SourceDaily, models.FlowIn, "100", "2024-01-01"),
				testutil.Record(t, "d2", models.SourceDaily, models.FlowOut, "50", "2024-01-02"),
			},
			models.SourceExpense: {
				testutil.Record(t, "e1", models.SourceExpense, models.FlowOut, "40", "2024-01-01"),
			},
			models.SourceCustomerPayment: {
				testutil.Record(t, "c1", models.SourceCustomerPayment, models.FlowIn, "75", "2024-01-03"),
			},
		}

		merged, err := merge(bySource)
		testutil.AssertNoError(t, err)

		if len(merged) != 4 {
			t.Fatalf("expected 4 records, got %d", len(merged))
		}
		seen := make(map[string]bool)
		for _, rec := range merged {
			if seen[rec.ID] {
				t.Errorf("id %s appears more than once", rec.ID)
			}
			seen[rec.ID] = true
		}
	})

	t.Run("combination_order_is_deterministic", func(t *testing.T) {
		bySource := map[models.Source][]models.TransactionRecord{
			models.SourceProjectTransaction: {
				testutil.Record(t, "p1", models.SourceProjectTransaction, models.FlowIn, "1", "2024-01-01"),
			},
			models.SourceDaily: {
				testutil.Record(t, "d1", models.SourceDaily, models.FlowIn, "1", "2024-01-01"),
			},
			models.SourceBillingPayment: {
				testutil.Record(t, "b1", models.SourceBillingPayment, models.FlowIn, "1", "2024-01-01"),
			},
		}

		merged, err := merge(bySource)
		testutil.AssertNoError(t, err)

		wantOrder := []string{"d1", "b1", "p1"}
		for i, want := range wantOrder {
			if merged[i].ID != want {
				t.Errorf("position %d: expected %s, got %s", i, want, merged[i].ID)
			}
		}
	})

	t.Run("collision_is_hard_error", func(t *testing.T) {
		bySource := map[models.Source][]models.TransactionRecord{
			models.SourceDaily: {
				testutil.Record(t, "dup", models.SourceDaily, models.FlowIn, "1", "2024-01-01"),
			},
			models.SourceExpense: {
				testutil.Record(t, "dup", models.SourceExpense, models.FlowOut, "2", "2024-01-01"),
			},
		}

		_, err := merge(bySource)
		testutil.AssertAppError(t, err, "DUPLICATE_RECORD_ID")
	})

	t.Run("empty_sources", func(t *testing.T) {
		merged, err := merge(map[models.Source][]models.TransactionRecord{})
		testutil.AssertNoError(t, err)
		if len(merged) != 0 {
			t.Errorf("expected empty merge, got %d records", len(merged))
		}
	})
}
