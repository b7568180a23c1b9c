package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"siteledger/internal/ledger"
)

// AccountHandler serves the account id-to-name lookup.
type AccountHandler struct {
	ledgerService ledger.Servicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledgerService ledger.Servicer) *AccountHandler {
	return &AccountHandler{ledgerService: ledgerService}
}

// ListAccounts lists all accounts
// @Summary     List accounts
// @Description List the account id-to-name lookup table from the accounts service
// @Tags        accounts
// @Produce     json
// @Success     200 {object} map[string]interface{} "Accounts"
// @Failure     502 {object} ErrorResponse "Upstream fetch failed"
// @Router      /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.ledgerService.Accounts(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}
