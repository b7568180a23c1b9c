package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"siteledger/internal/audit"
	"siteledger/internal/handlers"
	"siteledger/internal/ledger"
	"siteledger/internal/logger"
	"siteledger/internal/middleware"
	"siteledger/internal/testutil"
	"siteledger/internal/upstream"
	"siteledger/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Fake   *testutil.FakeBackoffice
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated fake
// back office. Seed app.Fake before issuing requests.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	fake := testutil.NewFakeBackoffice()
	t.Cleanup(fake.Close)

	backoffice := upstream.NewClient(fake.URL(), 5*time.Second)
	ledgerService := ledger.NewService(backoffice)
	auditTrail := audit.NewTrail()

	transactionHandler := handlers.NewTransactionHandler(ledgerService, auditTrail)
	categoryHandler := handlers.NewCategoryHandler(ledgerService, auditTrail)
	accountHandler := handlers.NewAccountHandler(ledgerService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	daily := v1.Group("/daily")
	daily.GET("/transactions", transactionHandler.ListDailyTransactions)
	daily.GET("/transactions/snapshot", transactionHandler.GetSnapshot)
	daily.POST("/transactions", transactionHandler.CreateTransaction)
	daily.POST("/transactions/transfer", transactionHandler.CreateTransfer)
	daily.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	daily.GET("/categories", categoryHandler.ListCategories)
	daily.POST("/categories", categoryHandler.CreateCategory)
	daily.POST("/report", transactionHandler.GenerateReport)

	v1.GET("/accounts", accountHandler.ListAccounts)

	return &testApp{Fake: fake, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// fetchView requests the aggregated view for the range and returns the view object.
func (app *testApp) fetchView(t *testing.T, query string) map[string]interface{} {
	t.Helper()
	rec := app.request("GET", "/api/v1/daily/transactions?"+query, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("view request failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["view"].(map[string]interface{})
}
