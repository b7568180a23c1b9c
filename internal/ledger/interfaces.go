package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"siteledger/internal/models"
)

// NewEntry carries a validated request for a direct ledger entry.
type NewEntry struct {
	Date             time.Time
	Amount           decimal.Decimal
	FlowType         models.FlowType
	CounterpartyFrom string
	CounterpartyTo   string
	Category         string
	Method           string
	Remark           string
}

// NewTransfer carries a validated request for a transfer entry.
type NewTransfer struct {
	Date        time.Time
	Amount      decimal.Decimal
	FromAccount string
	ToAccount   string
	Remark      string
}

// Servicer defines the contract for the aggregation pipeline and the
// mutations it proxies to the back office.
type Servicer interface {
	// View runs a full aggregation cycle for the range, then applies the
	// filter and sort to produce the rendered record list. Totals always
	// cover the unfiltered merged set.
	View(ctx context.Context, from, to time.Time, filter Filter, sort SortOption) (*models.LedgerView, error)

	// Latest returns the state machine position and the most recent
	// completed view without triggering a fetch.
	Latest() (State, *models.LedgerView, error)

	Accounts(ctx context.Context) ([]models.Account, error)
	Categories(ctx context.Context) ([]models.Category, error)

	CreateEntry(ctx context.Context, entry NewEntry) (models.TransactionRecord, error)
	CreateTransfer(ctx context.Context, transfer NewTransfer) (models.TransactionRecord, error)
	CreateCategory(ctx context.Context, name string) (models.Category, error)
	DeleteEntry(ctx context.Context, id string) error
	Report(ctx context.Context, from, to time.Time) ([]byte, error)
}
