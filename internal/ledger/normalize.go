// Package ledger implements the transaction aggregation pipeline: fetch the
// upstream sources for a date range, normalize each payload into the common
// record shape, merge and dedupe, then filter, sort, and total the result
// into a view model. Every stage produces a new collection; no stage mutates
// another's output in place.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/models"
	"siteledger/internal/upstream"
)

// Default labels substituted when a source omits an optional field.
const (
	categoryBillingPayment     = "Billing Payment"
	categoryPurchasePayment    = "Purchase Payment"
	categoryTransportPayment   = "Transport Payment"
	categoryProjectTransaction = "Project Transaction"
	counterpartyOtherExpense   = "Other Expense"
	defaultMethod              = "cash"
)

// parseRecordDate accepts the two date shapes the back office emits:
// RFC 3339 timestamps and plain calendar dates. An empty string maps to the
// zero time rather than an error; the range query upstream already scoped
// the record to the requested window.
func parseRecordDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// checkAmount rejects negative amounts. Missing amounts decode to zero,
// which is a valid non-negative amount and passes.
func checkAmount(source models.Source, id string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.Wrap(apperrors.ErrBadUpstreamData,
			fmt.Errorf("%s record %s: negative amount %s", source, id, amount))
	}
	return nil
}

func normalizeDaily(raws []upstream.RawDailyTransaction) ([]models.TransactionRecord, error) {
	records := make([]models.TransactionRecord, 0, len(raws))
	for i, raw := range raws {
		id := raw.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", models.SourceDaily, i)
		}
		if err := checkAmount(models.SourceDaily, id, raw.Amount); err != nil {
			return nil, err
		}
		date, err := parseRecordDate(raw.Date)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrBadUpstreamData, fmt.Errorf("daily record %s: %w", id, err))
		}
		flow := models.FlowType(raw.Type)
		if !flow.Valid() {
			return nil, apperrors.Wrap(apperrors.ErrBadUpstreamData,
				fmt.Errorf("daily record %s: unknown flow type %q", id, raw.Type))
		}
		records = append(records, models.TransactionRecord{
			ID:               id,
			Date:             date,
			Amount:           raw.Amount,
			FlowType:         flow,
			CounterpartyFrom: raw.PaymentFrom,
			CounterpartyTo:   raw.PaymentTo,
			Category:         raw.Category,
			Method:           raw.Method,
			Remark:           raw.Remark,
			Source:           models.SourceDaily,
		})
	}
	return records, nil
}

func normalizeBillPayments(payload upstream.RawBillPaymentsPayload) ([]models.TransactionRecord, error) {
	records := make([]models.TransactionRecord, 0, len(payload.Payments)+len(payload.OtherExpenses))

	for i, raw := range payload.Payments {
		id := raw.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", models.SourceBillingPayment, i)
		}
		if err := checkAmount(models.SourceBillingPayment, id, raw.Amount); err != nil {
			return nil, err
		}
		date, err := parseRecordDate(raw.Date)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrBadUpstreamData, fmt.Errorf("bill payment %s: %w", id, err))
		}
		category := raw.Category
		if category == "" {
			category = categoryBillingPayment
		}
		method := raw.Method
		if method == "" {
			method = defaultMethod
		}
		records = append(records, models.TransactionRecord{
			ID:               id,
			Date:             date,
			Amount:           raw.Amount,
			FlowType:         models.FlowIn,
			CounterpartyFrom: raw.CustomerName,
			Category:         category,
			Method:           method,
			Remark:           raw.Remark,
			Source:           models.SourceBillingPayment,
		})
	}

	for i, raw := range payload.OtherExpenses {
		id := raw.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", models.SourceExpense, i)
		}
		if err := checkAmount(models.SourceExpense, id, raw.Amount); err != nil {
			return nil, err
		}
		date, err := parseRecordDate(raw.Date)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrBadUpstreamData, fmt.Errorf("other expense %s: %w", id, err))
		}
		category := raw.Category
		if category == "" {
			category = counterpartyOtherExpense
		}
		method := raw.Method
		if method == "" {
			method = defaultMethod
		}
		records = append(records, models.TransactionRecord{
			ID:             id,
			Date:           date,
			Amount:         raw.Amount,
			FlowType:       models.FlowOut,
			CounterpartyTo: counterpartyOtherExpense,
			Category:       category,
			Method:         method,
			Remark:         raw.Remark,
			Source:         models.SourceExpense,
		})
	}

	return records, nil
}

// flattenNested maps one counterparty's nested payments into records. The
// synthesized id namespaces by source tag and group id so that no two
// sources can collide on index-derived ids.
func flattenNested(source models.Source, groupID string, payments []upstream.RawNestedPayment,
	build func(p upstream.RawNestedPayment, id string, date time.Time) models.TransactionRecord,
) ([]models.TransactionRecord, error) {
	records := make([]models.TransactionRecord, 0, len(payments))
	for i, p := range payments {
		id := p.ID
		if id == "" {
			id = fmt.Sprintf("%s-%s-%d", source, groupID, i)
		}
		if err := checkAmount(source, id, p.Amount); err != nil {
			return nil, err
		}
		date, err := parseRecordDate(p.Date)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrBadUpstreamData, fmt.Errorf("%s record %s: %w", source, id, err))
		}
		records = append(records, build(p, id, date))
	}
	return records, nil
}

func normalizeCustomerPayments(raws []upstream.RawCustomerDaily) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	for _, group := range raws {
		name := group.CustomerName
		flat, err := flattenNested(models.SourceCustomerPayment, group.CustomerID, group.Payments,
			func(p upstream.RawNestedPayment, id string, date time.Time) models.TransactionRecord {
				category := p.Category
				if category == "" {
					category = categoryBillingPayment
				}
				method := p.Method
				if method == "" {
					method = defaultMethod
				}
				return models.TransactionRecord{
					ID:               id,
					Date:             date,
					Amount:           p.Amount,
					FlowType:         models.FlowIn,
					CounterpartyFrom: name,
					Category:         category,
					Method:           method,
					Remark:           p.Remark,
					Source:           models.SourceCustomerPayment,
				}
			})
		if err != nil {
			return nil, err
		}
		records = append(records, flat...)
	}
	return records, nil
}

func normalizeSellerPayments(raws []upstream.RawSellerDaily) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	for _, group := range raws {
		name := group.SellerName
		flat, err := flattenNested(models.SourcePurchasePayment, group.SellerID, group.Payments,
			func(p upstream.RawNestedPayment, id string, date time.Time) models.TransactionRecord {
				category := p.Category
				if category == "" {
					category = categoryPurchasePayment
				}
				method := p.Method
				if method == "" {
					method = defaultMethod
				}
				return models.TransactionRecord{
					ID:             id,
					Date:           date,
					Amount:         p.Amount,
					FlowType:       models.FlowOut,
					CounterpartyTo: name,
					Category:       category,
					Method:         method,
					Remark:         p.Remark,
					Source:         models.SourcePurchasePayment,
				}
			})
		if err != nil {
			return nil, err
		}
		records = append(records, flat...)
	}
	return records, nil
}

func normalizeTransportPayments(raws []upstream.RawTransportDaily) ([]models.TransactionRecord, error) {
	var records []models.TransactionRecord
	for _, group := range raws {
		name := group.TransportName
		flat, err := flattenNested(models.SourceTransportPayment, group.TransportID, group.Payments,
			func(p upstream.RawNestedPayment, id string, date time.Time) models.TransactionRecord {
				category := p.Category
				if category == "" {
					category = categoryTransportPayment
				}
				method := p.Method
				if method == "" {
					method = defaultMethod
				}
				return models.TransactionRecord{
					ID:             id,
					Date:           date,
					Amount:         p.Amount,
					FlowType:       models.FlowOut,
					CounterpartyTo: name,
					Category:       category,
					Method:         method,
					Remark:         p.Remark,
					Source:         models.SourceTransportPayment,
				}
			})
		if err != nil {
			return nil, err
		}
		records = append(records, flat...)
	}
	return records, nil
}

func normalizeProjectTransactions(raws []upstream.RawProjectTransaction) ([]models.TransactionRecord, error) {
	records := make([]models.TransactionRecord, 0, len(raws))
	for i, raw := range raws {
		id := raw.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", models.SourceProjectTransaction, i)
		}
		if err := checkAmount(models.SourceProjectTransaction, id, raw.Amount); err != nil {
			return nil, err
		}
		date, err := parseRecordDate(raw.Date)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrBadUpstreamData, fmt.Errorf("project transaction %s: %w", id, err))
		}
		flow := models.FlowType(raw.Type)
		if !flow.Valid() {
			return nil, apperrors.Wrap(apperrors.ErrBadUpstreamData,
				fmt.Errorf("project transaction %s: unknown flow type %q", id, raw.Type))
		}
		category := raw.Category
		if category == "" {
			category = categoryProjectTransaction
		}
		rec := models.TransactionRecord{
			ID:       id,
			Date:     date,
			Amount:   raw.Amount,
			FlowType: flow,
			Category: category,
			Method:   raw.Method,
			Remark:   raw.Remark,
			Source:   models.SourceProjectTransaction,
		}
		switch flow {
		case models.FlowIn:
			rec.CounterpartyFrom = raw.ProjectName
		default:
			rec.CounterpartyTo = raw.ProjectName
		}
		records = append(records, rec)
	}
	return records, nil
}
