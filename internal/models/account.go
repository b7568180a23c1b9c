package models

// Account is the id-to-name lookup entity owned by the upstream accounts
// service. It is read-only here and used to resolve method and counterparty
// identifiers to display names.
type Account struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}
