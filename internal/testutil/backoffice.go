// Package testutil provides assertions, fixtures, and a fake back office for
// exercising the aggregation pipeline without real upstream services.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"siteledger/internal/upstream"
)

// FakeBackoffice is an httptest-backed stand-in for the back-office services.
// Seed the exported payload fields, then point an upstream.Client at URL().
// Handlers are safe for the concurrent fan-out the pipeline performs.
type FakeBackoffice struct {
	mu     sync.Mutex
	server *httptest.Server

	Daily      []upstream.RawDailyTransaction
	Bills      upstream.RawBillPaymentsPayload
	Customers  []upstream.RawCustomerDaily
	Sellers    []upstream.RawSellerDaily
	Transports []upstream.RawTransportDaily
	Projects   []upstream.RawProjectTransaction
	Accounts   []upstream.RawAccount
	Categories []upstream.RawCategory

	// CreatedEntries, CreatedTransfers, and DeletedIDs capture mutations.
	CreatedEntries   []upstream.CreateEntryRequest
	CreatedTransfers []upstream.CreateTransferRequest
	DeletedIDs       []string

	ReportHTML string

	// failPaths forces a 500 response for the given request paths.
	failPaths map[string]bool

	nextID int
}

// NewFakeBackoffice starts the fake server with empty payloads.
func NewFakeBackoffice() *FakeBackoffice {
	f := &FakeBackoffice{
		failPaths:  make(map[string]bool),
		ReportHTML: "<html><body>daily report</body></html>",
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/daily/transactions", f.withPayload(func() any { return f.Daily }))
	mux.HandleFunc("GET /api/daily/allbill/payments", f.withPayload(func() any { return f.Bills }))
	mux.HandleFunc("GET /api/customer/daily/payments", f.withPayload(func() any { return f.Customers }))
	mux.HandleFunc("GET /api/seller/daily/payments", f.withPayload(func() any { return f.Sellers }))
	mux.HandleFunc("GET /api/transportpayments/daily/payments", f.withPayload(func() any { return f.Transports }))
	mux.HandleFunc("GET /api/projects/project/all-transactions", f.withPayload(func() any { return f.Projects }))
	mux.HandleFunc("GET /api/accounts/allaccounts", f.withPayload(func() any { return f.Accounts }))
	mux.HandleFunc("GET /api/daily/transactions/categories", f.withPayload(func() any { return f.Categories }))

	mux.HandleFunc("POST /api/daily/transactions", f.handleCreateEntry)
	mux.HandleFunc("POST /api/daily/trans/transfer", f.handleCreateTransfer)
	mux.HandleFunc("POST /api/daily/transactions/categories", f.handleCreateCategory)
	mux.HandleFunc("DELETE /api/daily/transactions/{id}", f.handleDelete)
	mux.HandleFunc("POST /api/print/daily/generate-report", f.handleReport)

	f.server = httptest.NewServer(mux)
	return f
}

// URL returns the base URL to hand to upstream.NewClient.
func (f *FakeBackoffice) URL() string { return f.server.URL }

// Close shuts the fake server down.
func (f *FakeBackoffice) Close() { f.server.Close() }

// Fail forces requests to the given path to return 500.
func (f *FakeBackoffice) Fail(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPaths[path] = true
}

func (f *FakeBackoffice) shouldFail(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failPaths[path]
}

func (f *FakeBackoffice) withPayload(payload func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if f.shouldFail(r.URL.Path) {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, payload())
	}
}

func (f *FakeBackoffice) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(r.URL.Path) {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	var req upstream.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreatedEntries = append(f.CreatedEntries, req)
	f.nextID++
	stored := upstream.RawDailyTransaction{
		ID:          "created-" + strconv.Itoa(f.nextID),
		Date:        req.Date,
		Amount:      req.Amount,
		Type:        req.Type,
		PaymentFrom: req.PaymentFrom,
		PaymentTo:   req.PaymentTo,
		Category:    req.Category,
		Method:      req.Method,
		Remark:      req.Remark,
	}
	f.Daily = append(f.Daily, stored)
	writeJSON(w, http.StatusCreated, stored)
}

func (f *FakeBackoffice) handleCreateTransfer(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(r.URL.Path) {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	var req upstream.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreatedTransfers = append(f.CreatedTransfers, req)
	f.nextID++
	stored := upstream.RawDailyTransaction{
		ID:          "transfer-" + strconv.Itoa(f.nextID),
		Date:        req.Date,
		Amount:      req.Amount,
		Type:        "transfer",
		PaymentFrom: req.PaymentFrom,
		PaymentTo:   req.PaymentTo,
		Remark:      req.Remark,
		Category:    "Transfer",
		Method:      "transfer",
	}
	f.Daily = append(f.Daily, stored)
	writeJSON(w, http.StatusCreated, stored)
}

func (f *FakeBackoffice) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(r.URL.Path) {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	var req upstream.RawCategory
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.Categories = append(f.Categories, req)
	writeJSON(w, http.StatusCreated, req)
}

func (f *FakeBackoffice) handleDelete(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(r.URL.Path) {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	id := r.PathValue("id")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeletedIDs = append(f.DeletedIDs, id)
	kept := f.Daily[:0]
	for _, d := range f.Daily {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	f.Daily = kept
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}

func (f *FakeBackoffice) handleReport(w http.ResponseWriter, r *http.Request) {
	if f.shouldFail(r.URL.Path) {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(f.ReportHTML))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
