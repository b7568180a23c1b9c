// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("flow_type", validateFlowType)
		_ = v.RegisterValidation("tab_filter", validateTabFilter)
		_ = v.RegisterValidation("sort_option", validateSortOption)
		_ = v.RegisterValidation("ledger_date", validateLedgerDate)
	}
}

func validateFlowType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "in", "out", "transfer":
		return true
	}
	return false
}

func validateTabFilter(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "all", "in", "out", "transfer":
		return true
	}
	return false
}

func validateSortOption(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "date_asc", "date_desc", "amount_asc", "amount_desc":
		return true
	}
	return false
}

func validateLedgerDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
