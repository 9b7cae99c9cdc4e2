package facades

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T, handler http.HandlerFunc) *ExchangeHTTPFacade {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewExchangeHTTPFacade(srv.Client(), srv.URL+"/")
}

func TestGetAllCurrencies(t *testing.T) {
	facade := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, AllCurrenciesPath, r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"USD":"US Dollar","EUR":"Euro"}`))
	})

	catalog, err := facade.GetAllCurrencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CurrencyCatalog{
		{Code: "USD", Name: "US Dollar"},
		{Code: "EUR", Name: "Euro"},
	}, catalog)
}

func TestGetAllCurrencies_Errors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus bool
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: true,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantStatus: true,
		},
		{
			name: "invalid body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
		{
			name: "array body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`["USD"]`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := newUpstream(t, tt.handler)

			catalog, err := facade.GetAllCurrencies(context.Background())
			assert.Error(t, err)
			assert.Nil(t, catalog)
			assert.Equal(t, tt.wantStatus, errors.Is(err, ErrUpstreamStatus))
		})
	}
}

func TestGetAllCurrencies_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	facade := NewExchangeHTTPFacade(nil, url)
	_, err := facade.GetAllCurrencies(context.Background())
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	facade := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ConvertPath, r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2024-01-01", q.Get("date"))
		assert.Equal(t, "USD", q.Get("sourceCurrency"))
		assert.Equal(t, "EUR", q.Get("targetCurrency"))
		assert.Equal(t, "100", q.Get("amountInSourceCurrency"))
		_, _ = w.Write([]byte(`{"sourceCurrencyName":"US Dollar","targetCurrencyName":"Euro","amountInTargetCurrency":91.5}`))
	})

	result, err := facade.Convert(context.Background(), models.FormState{
		Date:                   "2024-01-01",
		SourceCurrency:         "USD",
		TargetCurrency:         "EUR",
		AmountInSourceCurrency: "100",
	})
	require.NoError(t, err)
	assert.Equal(t, &models.ConversionResult{
		SourceCurrencyName:     "US Dollar",
		TargetCurrencyName:     "Euro",
		AmountInTargetCurrency: 91.5,
	}, result)
}

func TestConvert_Error(t *testing.T) {
	facade := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"unknown currency"}`))
	})

	result, err := facade.Convert(context.Background(), models.FormState{
		Date:                   "2024-01-01",
		SourceCurrency:         "USD",
		TargetCurrency:         "XXX",
		AmountInSourceCurrency: "1",
	})
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamStatus)
	assert.Nil(t, result)
}

func TestConvert_CanceledContext(t *testing.T) {
	facade := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := facade.Convert(ctx, models.FormState{})
	assert.ErrorIs(t, err, context.Canceled)
}
