package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Upstream endpoint paths.
const (
	AllCurrenciesPath = "/getAllCurrencies"
	ConvertPath       = "/convert"
)

// ErrUpstreamStatus is returned when the exchange service answers with a non-2xx status.
var ErrUpstreamStatus = errors.New("unexpected exchange service status")

// ExchangeHTTPFacade reads currencies and conversions from the exchange service over HTTP.
type ExchangeHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewExchangeHTTPFacade creates a new facade for the exchange service at baseURL.
// A nil client falls back to a client with no timeout of its own.
func NewExchangeHTTPFacade(client *http.Client, baseURL string) *ExchangeHTTPFacade {
	if client == nil {
		client = &http.Client{}
	}
	return &ExchangeHTTPFacade{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetAllCurrencies fetches the full code -> name catalog in upstream order.
func (f *ExchangeHTTPFacade) GetAllCurrencies(ctx context.Context) (models.CurrencyCatalog, error) {
	const op = "facades.ExchangeHTTPFacade.GetAllCurrencies"

	var catalog models.CurrencyCatalog
	if err := f.get(ctx, AllCurrenciesPath, nil, &catalog); err != nil {
		logger.Log.Debugw("currency catalog request failed", "error", err)
		return nil, errors.Wrap(err, op)
	}

	return catalog, nil
}

// Convert sends the form as query parameters and returns the conversion result.
func (f *ExchangeHTTPFacade) Convert(ctx context.Context, form models.FormState) (*models.ConversionResult, error) {
	const op = "facades.ExchangeHTTPFacade.Convert"

	var result models.ConversionResult
	if err := f.get(ctx, ConvertPath, form.Values(), &result); err != nil {
		logger.Log.Debugw("conversion request failed",
			"from", form.SourceCurrency, "to", form.TargetCurrency, "error", err)
		return nil, errors.Wrap(err, op)
	}

	return &result, nil
}

func (f *ExchangeHTTPFacade) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := f.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Wrap(ErrUpstreamStatus, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}
