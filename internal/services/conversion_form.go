package services

//go:generate mockgen -source=conversion_form.go -destination=conversion_form_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Messages shown to the user when an exchange service call fails.
const (
	CatalogFailureMessage    = "Failed to fetch currency data."
	ConversionFailureMessage = "Failed to fetch conversion data."
)

// Endpoint labels used for upstream metrics.
const (
	EndpointAllCurrencies = "getAllCurrencies"
	EndpointConvert       = "convert"
)

// ErrIncompleteForm is returned when a submission is attempted with an empty required field.
var ErrIncompleteForm = errors.New("conversion form has empty required fields")

// ErrUnknownCurrency is returned when a currency field holds a code missing from the form's catalog.
var ErrUnknownCurrency = errors.New("currency is not in the catalog")

// CurrencyCatalogReader fetches the currency catalog from the exchange service.
type CurrencyCatalogReader interface {
	GetAllCurrencies(ctx context.Context) (models.CurrencyCatalog, error)
}

// CurrencyConverter performs a conversion on the exchange service.
type CurrencyConverter interface {
	Convert(ctx context.Context, form models.FormState) (*models.ConversionResult, error)
}

// UpstreamObserver records the outcome of exchange service calls.
type UpstreamObserver interface {
	ObserveUpstream(endpoint, outcome string)
}

// ConversionFormService drives the lifecycle of a conversion form:
// mount, field updates and submissions.
type ConversionFormService struct {
	catalog   CurrencyCatalogReader
	converter CurrencyConverter
	observer  UpstreamObserver
	validate  *validator.Validate
}

// NewConversionFormService creates a new service instance
func NewConversionFormService(
	catalog CurrencyCatalogReader,
	converter CurrencyConverter,
	observer UpstreamObserver,
) *ConversionFormService {
	return &ConversionFormService{
		catalog:   catalog,
		converter: converter,
		observer:  observer,
		validate:  validator.New(),
	}
}

// Mount creates a fresh form and loads the currency catalog once.
// A catalog failure is reported through the form's error message, never as an error.
func (svc *ConversionFormService) Mount(ctx context.Context) *models.ConversionForm {
	form := &models.ConversionForm{
		ID:      uuid.New().String(),
		Catalog: models.CurrencyCatalog{},
	}

	catalog, err := svc.catalog.GetAllCurrencies(ctx)
	if err != nil {
		svc.observer.ObserveUpstream(EndpointAllCurrencies, metrics.OutcomeFailure)
		logger.Log.Errorw("failed to fetch currency catalog", "form_id", form.ID, "error", err)
		form.Error = CatalogFailureMessage
		return form
	}
	svc.observer.ObserveUpstream(EndpointAllCurrencies, metrics.OutcomeSuccess)

	form.Catalog = catalog
	return form
}

// UpdateField changes one named field of the form.
// Currency fields accept only an empty value or a code from the form's catalog.
func (svc *ConversionFormService) UpdateField(form *models.ConversionForm, name, value string) error {
	if isCurrencyField(name) && value != "" && !form.Catalog.Has(value) {
		return fmt.Errorf("%s %q: %w", name, value, ErrUnknownCurrency)
	}
	return form.Form.SetField(name, value)
}

func isCurrencyField(name string) bool {
	return name == models.FieldSourceCurrency || name == models.FieldTargetCurrency
}

// Submit sends the current form to the exchange service.
// The previous result stays in place when the conversion fails.
func (svc *ConversionFormService) Submit(ctx context.Context, form *models.ConversionForm) error {
	if err := svc.validate.Struct(form.Form); err != nil {
		logger.Log.Debugw("conversion form incomplete", "form_id", form.ID, "error", err)
		return ErrIncompleteForm
	}
	if !form.Catalog.Has(form.Form.SourceCurrency) || !form.Catalog.Has(form.Form.TargetCurrency) {
		logger.Log.Debugw("conversion form currency outside catalog",
			"form_id", form.ID,
			"from", form.Form.SourceCurrency,
			"to", form.Form.TargetCurrency,
		)
		return ErrUnknownCurrency
	}

	form.Error = ""

	result, err := svc.converter.Convert(ctx, form.Form)
	if err != nil {
		svc.observer.ObserveUpstream(EndpointConvert, metrics.OutcomeFailure)
		logger.Log.Errorw("failed to fetch conversion",
			"form_id", form.ID,
			"date", form.Form.Date,
			"from", form.Form.SourceCurrency,
			"to", form.Form.TargetCurrency,
			"amount", form.Form.AmountInSourceCurrency,
			"error", err,
		)
		form.Error = ConversionFailureMessage
		return nil
	}
	svc.observer.ObserveUpstream(EndpointConvert, metrics.OutcomeSuccess)

	form.Result = result
	return nil
}
