package integration

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"siteledger/internal/upstream"
)

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad amount %q: %v", s, err)
	}
	return d
}

func seedAllSources(t *testing.T, app *testApp) {
	t.Helper()
	app.Fake.Daily = []upstream.RawDailyTransaction{
		{ID: "d1", Date: "2024-03-05", Amount: amount(t, "100"), Type: "in", PaymentFrom: "Client A", Category: "Sales", Method: "cash"},
	}
	app.Fake.Bills.Payments = []upstream.RawBillPayment{
		{ID: "b1", Date: "2024-03-06", Amount: amount(t, "60"), Method: "bank", CustomerName: "Client B"},
	}
	app.Fake.Bills.OtherExpenses = []upstream.RawOtherExpense{
		{ID: "e1", Date: "2024-03-07", Amount: amount(t, "40"), Method: "cash", Remark: "diesel"},
	}
	app.Fake.Customers = []upstream.RawCustomerDaily{
		// No upstream id on the nested payment, so the pipeline synthesizes one.
		{CustomerID: "c1", CustomerName: "Client C", Payments: []upstream.RawNestedPayment{
			{Date: "2024-03-08", Amount: amount(t, "30"), Method: "cash"},
		}},
	}
	app.Fake.Sellers = []upstream.RawSellerDaily{
		{SellerID: "s1", SellerName: "Vendor A", Payments: []upstream.RawNestedPayment{
			{ID: "sp1", Date: "2024-03-09", Amount: amount(t, "20"), Method: "cash"},
		}},
	}
	app.Fake.Transports = []upstream.RawTransportDaily{
		{TransportID: "t1", TransportName: "Hauler A", Payments: []upstream.RawNestedPayment{
			{ID: "tp1", Date: "2024-03-10", Amount: amount(t, "10"), Method: "cash"},
		}},
	}
	app.Fake.Projects = []upstream.RawProjectTransaction{
		{ID: "pj1", Date: "2024-03-11", Amount: amount(t, "5"), Type: "out", ProjectName: "Site 7", Method: "cash"},
	}
}

func TestAggregationFlow_AllSourcesMerged(t *testing.T) {
	app := setupApp(t)
	seedAllSources(t, app)

	view := app.fetchView(t, "from_date=2024-03-01&to_date=2024-03-31")

	records := view["records"].([]interface{})
	if len(records) != 7 {
		t.Fatalf("expected 7 merged records, got %d", len(records))
	}

	seen := map[string]bool{}
	for _, r := range records {
		rec := r.(map[string]interface{})
		seen[rec["id"].(string)] = true
	}
	for _, id := range []string{"d1", "b1", "e1", "sp1", "tp1", "pj1"} {
		if !seen[id] {
			t.Errorf("expected record %s in the merged view", id)
		}
	}
	if !seen["customerPayment-c1-0"] {
		t.Error("expected the nested customer payment under its synthesized id")
	}

	// in: 100 + 60 + 30; out: 40 + 20 + 10 + 5
	totals := view["totals"].(map[string]interface{})
	if totals["in"] != "190" {
		t.Errorf("expected in total 190, got %v", totals["in"])
	}
	if totals["out"] != "75" {
		t.Errorf("expected out total 75, got %v", totals["out"])
	}
	if totals["transfer"] != "0" {
		t.Errorf("expected transfer total 0, got %v", totals["transfer"])
	}
}

func TestAggregationFlow_FilterKeepsTotals(t *testing.T) {
	app := setupApp(t)
	seedAllSources(t, app)

	view := app.fetchView(t, "from_date=2024-03-01&to_date=2024-03-31&tab=out")

	records := view["records"].([]interface{})
	if len(records) != 4 {
		t.Fatalf("expected 4 money-out records, got %d", len(records))
	}
	totals := view["totals"].(map[string]interface{})
	if totals["in"] != "190" {
		t.Errorf("expected totals over the unfiltered set, got in=%v", totals["in"])
	}
}

func TestAggregationFlow_SortAscending(t *testing.T) {
	app := setupApp(t)
	seedAllSources(t, app)

	view := app.fetchView(t, "from_date=2024-03-01&to_date=2024-03-31&sort=date_asc")

	records := view["records"].([]interface{})
	first := records[0].(map[string]interface{})
	last := records[len(records)-1].(map[string]interface{})
	if first["id"] != "d1" {
		t.Errorf("expected oldest record first, got %v", first["id"])
	}
	if last["id"] != "pj1" {
		t.Errorf("expected newest record last, got %v", last["id"])
	}
}

func TestAggregationFlow_FailingSourceReturns502(t *testing.T) {
	app := setupApp(t)
	seedAllSources(t, app)
	app.Fake.Fail("/api/transportpayments/daily/payments")

	rec := app.request("GET", "/api/v1/daily/transactions?from_date=2024-03-01&to_date=2024-03-31", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "FETCH_FAILED" {
		t.Errorf("expected FETCH_FAILED, got %v", errObj["code"])
	}

	// The snapshot reflects the failed cycle.
	rec = app.request("GET", "/api/v1/daily/transactions/snapshot", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from snapshot, got %d", rec.Code)
	}
	snap := parseJSON(t, rec)
	if snap["state"] != "error" {
		t.Errorf("expected error state, got %v", snap["state"])
	}
}

func TestAggregationFlow_InvalidRangeRejected(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/daily/transactions?from_date=2024-03-31&to_date=2024-03-01", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_RANGE" {
		t.Errorf("expected INVALID_RANGE, got %v", errObj["code"])
	}
}

func TestAggregationFlow_DuplicateIDAcrossSources(t *testing.T) {
	app := setupApp(t)
	app.Fake.Daily = []upstream.RawDailyTransaction{
		{ID: "dup", Date: "2024-03-05", Amount: amount(t, "100"), Type: "in", PaymentFrom: "Client A", Category: "Sales", Method: "cash"},
	}
	app.Fake.Projects = []upstream.RawProjectTransaction{
		{ID: "dup", Date: "2024-03-06", Amount: amount(t, "5"), Type: "out", ProjectName: "Site 7", Method: "cash"},
	}

	rec := app.request("GET", "/api/v1/daily/transactions?from_date=2024-03-01&to_date=2024-03-31", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "DUPLICATE_RECORD_ID" {
		t.Errorf("expected DUPLICATE_RECORD_ID, got %v", errObj["code"])
	}
}

func TestAggregationFlow_SnapshotBeforeFirstFetch(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/daily/transactions/snapshot", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	snap := parseJSON(t, rec)
	if snap["state"] != "loading" {
		t.Errorf("expected loading state before any fetch, got %v", snap["state"])
	}
	if snap["view"] != nil {
		t.Errorf("expected nil view before any fetch, got %v", snap["view"])
	}
}

func TestAggregationFlow_AccountNamesResolved(t *testing.T) {
	app := setupApp(t)
	app.Fake.Accounts = []upstream.RawAccount{{AccountID: "acc-1", AccountName: "Maybank"}}
	app.Fake.Daily = []upstream.RawDailyTransaction{
		{ID: "d1", Date: "2024-03-05", Amount: amount(t, "100"), Type: "in", PaymentFrom: "acc-1", Category: "Sales", Method: "acc-1"},
	}

	view := app.fetchView(t, "from_date=2024-03-01&to_date=2024-03-31")
	rec := view["records"].([]interface{})[0].(map[string]interface{})
	if rec["method"] != "Maybank" {
		t.Errorf("expected resolved method name, got %v", rec["method"])
	}
	if rec["counterparty_from"] != "Maybank" {
		t.Errorf("expected resolved counterparty name, got %v", rec["counterparty_from"])
	}
}
