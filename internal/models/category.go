package models

// Category is a transaction category label. The set is user-extensible:
// new categories are created through the upstream ledger service and
// appended to the in-memory list on the next fetch.
type Category struct {
	Name string `json:"name"`
}
