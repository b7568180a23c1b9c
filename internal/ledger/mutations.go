package ledger

import (
	"context"
	"time"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/models"
	"siteledger/internal/upstream"
)

// CreateEntry validates and proxies a new direct ledger entry. Validation
// failures are rejected before any upstream request is sent; an upstream
// rejection leaves no local state to roll back.
func (s *service) CreateEntry(ctx context.Context, entry NewEntry) (models.TransactionRecord, error) {
	if entry.Amount.Sign() <= 0 {
		return models.TransactionRecord{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	switch entry.FlowType {
	case models.FlowIn:
		if entry.CounterpartyFrom == "" {
			return models.TransactionRecord{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment source is required for money-in entries")
		}
	case models.FlowOut:
		if entry.CounterpartyTo == "" {
			return models.TransactionRecord{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "payment destination is required for money-out entries")
		}
	default:
		// Transfers go through CreateTransfer.
		return models.TransactionRecord{}, apperrors.ErrInvalidFlowType
	}
	if entry.Category == "" {
		return models.TransactionRecord{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if entry.Method == "" {
		return models.TransactionRecord{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "method is required")
	}

	date := entry.Date
	if date.IsZero() {
		date = time.Now()
	}

	raw, err := s.backoffice.CreateTransaction(ctx, upstream.CreateEntryRequest{
		Date:        date.Format("2006-01-02"),
		Amount:      entry.Amount,
		Type:        string(entry.FlowType),
		PaymentFrom: entry.CounterpartyFrom,
		PaymentTo:   entry.CounterpartyTo,
		Category:    entry.Category,
		Method:      entry.Method,
		Remark:      entry.Remark,
	})
	if err != nil {
		return models.TransactionRecord{}, apperrors.Wrap(apperrors.ErrUpstreamRejected, err)
	}

	records, err := normalizeDaily([]upstream.RawDailyTransaction{raw})
	if err != nil {
		return models.TransactionRecord{}, err
	}
	return records[0], nil
}

// CreateTransfer validates and proxies a transfer entry.
func (s *service) CreateTransfer(ctx context.Context, transfer NewTransfer) (models.TransactionRecord, error) {
	if transfer.Amount.Sign() <= 0 {
		return models.TransactionRecord{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if transfer.FromAccount == "" || transfer.ToAccount == "" {
		return models.TransactionRecord{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "source and destination accounts are required")
	}
	if transfer.FromAccount == transfer.ToAccount {
		return models.TransactionRecord{}, apperrors.ErrSameAccountTransfer
	}

	date := transfer.Date
	if date.IsZero() {
		date = time.Now()
	}

	raw, err := s.backoffice.CreateTransfer(ctx, upstream.CreateTransferRequest{
		Date:        date.Format("2006-01-02"),
		Amount:      transfer.Amount,
		PaymentFrom: transfer.FromAccount,
		PaymentTo:   transfer.ToAccount,
		Remark:      transfer.Remark,
	})
	if err != nil {
		return models.TransactionRecord{}, apperrors.Wrap(apperrors.ErrUpstreamRejected, err)
	}

	records, err := normalizeDaily([]upstream.RawDailyTransaction{raw})
	if err != nil {
		return models.TransactionRecord{}, err
	}
	return records[0], nil
}

// CreateCategory appends a category upstream and returns the stored label.
func (s *service) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	if name == "" {
		return models.Category{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	raw, err := s.backoffice.CreateCategory(ctx, name)
	if err != nil {
		return models.Category{}, apperrors.Wrap(apperrors.ErrUpstreamRejected, err)
	}
	return models.Category{Name: raw.Name}, nil
}

// DeleteEntry deletes a direct ledger entry. The record must be present in
// the latest completed view and carry the daily source tag; every other
// source is read-only through this service.
func (s *service) DeleteEntry(ctx context.Context, id string) error {
	rec, ok := s.snapshot.Lookup(id)
	if !ok {
		return apperrors.ErrTransactionNotFound
	}
	if !rec.Deletable() {
		return apperrors.ErrRecordNotDeletable
	}

	if err := s.backoffice.DeleteTransaction(ctx, id); err != nil {
		return apperrors.Wrap(apperrors.ErrUpstreamRejected, err)
	}
	return nil
}

// Report relays a server-rendered HTML report for the range.
func (s *service) Report(ctx context.Context, from, to time.Time) ([]byte, error) {
	if from.After(to) {
		return nil, apperrors.ErrInvalidRange
	}
	html, err := s.backoffice.GenerateReport(ctx, from, to)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUpstreamRejected, err)
	}
	return html, nil
}
