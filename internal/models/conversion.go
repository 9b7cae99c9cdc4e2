package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ConversionResult is the exchange service answer to a conversion request.
type ConversionResult struct {
	// Source currency display name
	// example: US Dollar
	SourceCurrencyName string `json:"sourceCurrencyName"`

	// Target currency display name
	// example: Euro
	TargetCurrencyName string `json:"targetCurrencyName"`

	// Converted amount
	// example: 91.5
	AmountInTargetCurrency float64 `json:"amountInTargetCurrency"`
}

// FormattedAmount renders the converted amount with exactly two decimals,
// rounding half away from zero.
func (r ConversionResult) FormattedAmount() string {
	return decimal.NewFromFloat(r.AmountInTargetCurrency).StringFixed(2)
}

// ConversionForm is the state of one mounted conversion page.
// It is created on mount and only mutated by that page's own requests.
type ConversionForm struct {
	ID      string            `json:"id"`
	Catalog CurrencyCatalog   `json:"catalog"`
	Form    FormState         `json:"form"`
	Result  *ConversionResult `json:"result,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// ResultText is the sentence shown under the form after a successful conversion.
// It is empty while no result is held.
func (f *ConversionForm) ResultText() string {
	if f.Result == nil {
		return ""
	}
	return fmt.Sprintf("%s %s is equal to %s %s",
		f.Form.AmountInSourceCurrency,
		f.Result.SourceCurrencyName,
		f.Result.FormattedAmount(),
		f.Result.TargetCurrencyName,
	)
}
