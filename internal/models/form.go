package models

import (
	"errors"
	"net/url"
)

// Form field names, shared by the HTML form and the conversion request.
const (
	FieldDate                   = "date"
	FieldSourceCurrency         = "sourceCurrency"
	FieldTargetCurrency         = "targetCurrency"
	FieldAmountInSourceCurrency = "amountInSourceCurrency"
)

// FormFields lists every form field in rendering order.
var FormFields = []string{
	FieldDate,
	FieldSourceCurrency,
	FieldTargetCurrency,
	FieldAmountInSourceCurrency,
}

// ErrUnknownField is returned when a field name is not part of the form.
var ErrUnknownField = errors.New("unknown form field")

// FormState holds the values currently entered in the conversion form.
type FormState struct {
	// Conversion date
	// example: 2024-01-01
	Date string `json:"date" validate:"required"`

	// Source currency code
	// example: USD
	SourceCurrency string `json:"sourceCurrency" validate:"required"`

	// Target currency code
	// example: EUR
	TargetCurrency string `json:"targetCurrency" validate:"required"`

	// Amount in source currency units
	// example: 100
	AmountInSourceCurrency string `json:"amountInSourceCurrency" validate:"required"`
}

// SetField updates exactly one named field and leaves the others untouched.
func (f *FormState) SetField(name, value string) error {
	switch name {
	case FieldDate:
		f.Date = value
	case FieldSourceCurrency:
		f.SourceCurrency = value
	case FieldTargetCurrency:
		f.TargetCurrency = value
	case FieldAmountInSourceCurrency:
		f.AmountInSourceCurrency = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Values returns the form as conversion request query parameters.
func (f FormState) Values() url.Values {
	v := url.Values{}
	v.Set(FieldDate, f.Date)
	v.Set(FieldSourceCurrency, f.SourceCurrency)
	v.Set(FieldTargetCurrency, f.TargetCurrency)
	v.Set(FieldAmountInSourceCurrency, f.AmountInSourceCurrency)
	return v
}
