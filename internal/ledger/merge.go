package ledger

import (
	"fmt"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/models"
)

// combineOrder fixes the order sources are merged in. The order is part of
// the contract: it determines the pre-sort position of every record, so the
// merged slice is deterministic for a given set of payloads.
var combineOrder = []models.Source{
	models.SourceDaily,
	models.SourceBillingPayment,
	models.SourceCustomerPayment,
	models.SourceExpense,
	models.SourcePurchasePayment,
	models.SourceTransportPayment,
	models.SourceProjectTransaction,
}

// merge combines the normalized per-source slices into one collection keyed
// by record id. Synthesized ids are namespaced by source, so a collision
// means two sources genuinely double-reported a record; that is treated as
// a hard error rather than a silent last-write-wins overwrite.
func merge(bySource map[models.Source][]models.TransactionRecord) ([]models.TransactionRecord, error) {
	total := 0
	for _, records := range bySource {
		total += len(records)
	}

	seen := make(map[string]models.Source, total)
	merged := make([]models.TransactionRecord, 0, total)

	for _, source := range combineOrder {
		for _, rec := range bySource[source] {
			if prev, ok := seen[rec.ID]; ok {
				return nil, apperrors.Wrap(apperrors.ErrDuplicateRecordID,
					fmt.Errorf("id %q reported by both %s and %s", rec.ID, prev, rec.Source))
			}
			seen[rec.ID] = rec.Source
			merged = append(merged, rec)
		}
	}

	return merged, nil
}
