// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"finboard/internal/models"
)

var monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Configure(v)
	}
}

// Configure installs the custom validations and type funcs on v.
func Configure(v *validator.Validate) {
	// Decimal fields validate as numbers, so gte=0 and friends apply.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("portfolio_type", validatePortfolioType)
	_ = v.RegisterValidation("investment_type", validateInvestmentType)
	_ = v.RegisterValidation("month", validateMonth)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch models.TransactionType(fl.Field().String()) {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
		return true
	}
	return false
}

func validatePortfolioType(fl validator.FieldLevel) bool {
	switch models.PortfolioType(fl.Field().String()) {
	case models.PortfolioTypeBankingApp, models.PortfolioTypeRoboAdvisor, models.PortfolioTypeInsuranceLinked,
		models.PortfolioTypeBrokerage, models.PortfolioTypeOther:
		return true
	}
	return false
}

func validateInvestmentType(fl validator.FieldLevel) bool {
	switch models.InvestmentType(fl.Field().String()) {
	case models.InvestmentTypeStock, models.InvestmentTypeUnitTrust, models.InvestmentTypeETF,
		models.InvestmentTypeBond, models.InvestmentTypeCrypto, models.InvestmentTypeOther:
		return true
	}
	return false
}

func validateMonth(fl validator.FieldLevel) bool {
	return monthRegex.MatchString(fl.Field().String())
}
