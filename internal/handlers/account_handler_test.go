package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/models"
)

func setupAccountRouter(handler *AccountHandler) *gin.Engine {
	r := gin.New()
	r.GET("/accounts", handler.ListAccounts)
	return r
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	t.Run("returns 200 with accounts", func(t *testing.T) {
		svc := &mockLedgerService{
			accountsFn: func(context.Context) ([]models.Account, error) {
				return []models.Account{
					{AccountID: "acc-1", AccountName: "Maybank"},
					{AccountID: "acc-2", AccountName: "Petty Cash"},
				}, nil
			},
		}
		handler := NewAccountHandler(svc)
		r := setupAccountRouter(handler)

		rec := doRequest(r, "GET", "/accounts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		accounts := result["accounts"].([]interface{})
		if len(accounts) != 2 {
			t.Errorf("expected 2 accounts, got %d", len(accounts))
		}
	})

	t.Run("returns 502 on upstream failure", func(t *testing.T) {
		svc := &mockLedgerService{
			accountsFn: func(context.Context) ([]models.Account, error) {
				return nil, apperrors.ErrFetchFailed
			},
		}
		handler := NewAccountHandler(svc)
		r := setupAccountRouter(handler)

		rec := doRequest(r, "GET", "/accounts", "")

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "FETCH_FAILED")
	})
}
