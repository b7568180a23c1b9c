package ledger

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/logger"
	"siteledger/internal/models"
	"siteledger/internal/upstream"
)

// service orchestrates the pipeline stages against the back-office client.
type service struct {
	backoffice *upstream.Client
	snapshot   *Snapshot
	cycle      atomic.Uint64
	log        *zap.SugaredLogger
}

// NewService creates a new Servicer backed by the given back-office client.
func NewService(backoffice *upstream.Client) Servicer {
	return &service{
		backoffice: backoffice,
		snapshot:   NewSnapshot(),
		log:        logger.Get().With("component", "ledger"),
	}
}

// sourcePayloads collects the raw per-source payloads of one fetch cycle.
// Each field is written by exactly one goroutine in the fan-out.
type sourcePayloads struct {
	daily      []upstream.RawDailyTransaction
	bills      upstream.RawBillPaymentsPayload
	customers  []upstream.RawCustomerDaily
	sellers    []upstream.RawSellerDaily
	transports []upstream.RawTransportDaily
	projects   []upstream.RawProjectTransaction
	accounts   []upstream.RawAccount
}

// fetchAll issues the seven source requests plus the accounts lookup
// concurrently and waits for all of them. Any single failure fails the
// whole cycle; there is no partial result.
func (s *service) fetchAll(ctx context.Context, from, to time.Time) (*sourcePayloads, error) {
	var p sourcePayloads
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		p.daily, err = s.backoffice.FetchDailyTransactions(ctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		p.bills, err = s.backoffice.FetchBillPayments(ctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		p.customers, err = s.backoffice.FetchCustomerPayments(ctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		p.sellers, err = s.backoffice.FetchSellerPayments(ctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		p.transports, err = s.backoffice.FetchTransportPayments(ctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		p.projects, err = s.backoffice.FetchProjectTransactions(ctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		p.accounts, err = s.backoffice.FetchAccounts(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &p, nil
}

// aggregate runs one full cycle: fetch, normalize, merge, resolve account
// names, total. The completed view is stored in the snapshot unless a newer
// cycle already settled.
func (s *service) aggregate(ctx context.Context, from, to time.Time) (*models.LedgerView, error) {
	if from.After(to) {
		return nil, apperrors.ErrInvalidRange
	}

	cycle := s.cycle.Add(1)
	s.snapshot.Begin(cycle)

	payloads, err := s.fetchAll(ctx, from, to)
	if err != nil {
		wrapped := apperrors.Wrap(apperrors.ErrFetchFailed, err)
		s.snapshot.Fail(cycle, wrapped)
		s.log.Errorw("fetch cycle failed", "cycle", cycle, "error", err)
		return nil, wrapped
	}

	bySource, err := normalizeAll(payloads)
	if err != nil {
		s.snapshot.Fail(cycle, err)
		s.log.Errorw("normalization failed", "cycle", cycle, "error", err)
		return nil, err
	}

	merged, err := merge(bySource)
	if err != nil {
		s.snapshot.Fail(cycle, err)
		s.log.Errorw("merge collision", "cycle", cycle, "error", err)
		return nil, err
	}

	resolveAccountNames(merged, payloads.accounts)

	view := &models.LedgerView{
		FromDate: from,
		ToDate:   to,
		Records:  merged,
		Totals:   totals(merged),
		Cycle:    cycle,
	}

	if !s.snapshot.Complete(view) {
		s.log.Warnw("discarding stale fetch cycle", "cycle", cycle)
	}

	s.log.Infow("aggregation cycle complete",
		"cycle", cycle,
		"records", len(merged),
		"from", from.Format("2006-01-02"),
		"to", to.Format("2006-01-02"),
	)
	return view, nil
}

func normalizeAll(p *sourcePayloads) (map[models.Source][]models.TransactionRecord, error) {
	bySource := make(map[models.Source][]models.TransactionRecord, len(combineOrder))

	daily, err := normalizeDaily(p.daily)
	if err != nil {
		return nil, err
	}
	bySource[models.SourceDaily] = daily

	billing, err := normalizeBillPayments(p.bills)
	if err != nil {
		return nil, err
	}
	// The combined billing payload yields two source tags.
	for _, rec := range billing {
		bySource[rec.Source] = append(bySource[rec.Source], rec)
	}

	customers, err := normalizeCustomerPayments(p.customers)
	if err != nil {
		return nil, err
	}
	bySource[models.SourceCustomerPayment] = customers

	sellers, err := normalizeSellerPayments(p.sellers)
	if err != nil {
		return nil, err
	}
	bySource[models.SourcePurchasePayment] = sellers

	transports, err := normalizeTransportPayments(p.transports)
	if err != nil {
		return nil, err
	}
	bySource[models.SourceTransportPayment] = transports

	projects, err := normalizeProjectTransactions(p.projects)
	if err != nil {
		return nil, err
	}
	bySource[models.SourceProjectTransaction] = projects

	return bySource, nil
}

// resolveAccountNames replaces method and counterparty values that hold an
// account id with the account's display name. Values that match no account
// are left as-is.
func resolveAccountNames(records []models.TransactionRecord, accounts []upstream.RawAccount) {
	if len(accounts) == 0 {
		return
	}
	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.AccountID] = a.AccountName
	}
	for i := range records {
		if name, ok := names[records[i].Method]; ok {
			records[i].Method = name
		}
		if name, ok := names[records[i].CounterpartyFrom]; ok {
			records[i].CounterpartyFrom = name
		}
		if name, ok := names[records[i].CounterpartyTo]; ok {
			records[i].CounterpartyTo = name
		}
	}
}

// View runs an aggregation cycle and applies the requested filter and sort
// to the rendered record list. Totals stay those of the unfiltered set.
func (s *service) View(ctx context.Context, from, to time.Time, filter Filter, sort SortOption) (*models.LedgerView, error) {
	full, err := s.aggregate(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rendered := *full
	rendered.Records = sortRecords(filter.Apply(full.Records), sort)
	return &rendered, nil
}

// Latest returns the snapshot state without triggering a fetch.
func (s *service) Latest() (State, *models.LedgerView, error) {
	return s.snapshot.Current()
}

// Accounts lists the account id-to-name lookup table.
func (s *service) Accounts(ctx context.Context) ([]models.Account, error) {
	raws, err := s.backoffice.FetchAccounts(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrFetchFailed, err)
	}
	accounts := make([]models.Account, 0, len(raws))
	for _, raw := range raws {
		accounts = append(accounts, models.Account{AccountID: raw.AccountID, AccountName: raw.AccountName})
	}
	return accounts, nil
}

// Categories lists the ledger categories.
func (s *service) Categories(ctx context.Context) ([]models.Category, error) {
	raws, err := s.backoffice.FetchCategories(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrFetchFailed, err)
	}
	categories := make([]models.Category, 0, len(raws))
	for _, raw := range raws {
		categories = append(categories, models.Category{Name: raw.Name})
	}
	return categories, nil
}
