package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

func newTestGateway(serverURL string) *QuoteGateway {
	cfg := &models.Config{}
	cfg.VehicleAPI.BaseURL = serverURL
	cfg.VehicleAPI.APIKey = "test-key"
	cfg.VehicleAPI.Timeout = 2
	return NewQuoteGW(cfg, nil)
}

func TestFetchVehicleData_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "AB12CDE", r.URL.Query().Get("vrm"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"VehicleRegistration": {
				"Vrm": "AB12CDE",
				"Make": "Ford",
				"Model": "Focus",
				"FuelType": "Petrol",
				"YearOfManufacture": 2012,
				"GrossWeight": 1800
			},
			"Dimensions": {"KerbWeight": 1200},
			"SmmtDetails": {"BodyStyle": "Hatchback"}
		}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)
	snapshot, err := gw.FetchVehicleData(context.Background(), "AB12CDE")
	require.NoError(t, err)
	assert.Equal(t, "AB12CDE", snapshot.VRM)
	assert.Equal(t, "Ford", snapshot.Make)
	assert.Equal(t, "Hatchback", snapshot.BodyStyle)
	require.NotNil(t, snapshot.PricingWeight())
	assert.Equal(t, 1200.0, *snapshot.PricingWeight())
}

func TestFetchVehicleData_GrossWeightFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"VehicleRegistration": {"Vrm": "AB12CDE", "Make": "Ford", "GrossWeight": 1800},
			"Dimensions": {}
		}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)
	snapshot, err := gw.FetchVehicleData(context.Background(), "AB12CDE")
	require.NoError(t, err)
	require.NotNil(t, snapshot.PricingWeight())
	assert.Equal(t, 1800.0, *snapshot.PricingWeight())
}

func TestFetchVehicleData_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)
	_, err := gw.FetchVehicleData(context.Background(), "ZZ99ZZZ")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.NotFound))
}

func TestFetchVehicleData_EmptyPayloadReadsAsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)
	_, err := gw.FetchVehicleData(context.Background(), "ZZ99ZZZ")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.NotFound))
}

func TestFetchVehicleData_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "garbage payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			gw := newTestGateway(server.URL)
			_, err := gw.FetchVehicleData(context.Background(), "AB12CDE")
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.UpstreamUnavailable))
		})
	}
}

func TestFetchVehicleData_ConnectionRefused(t *testing.T) {
	gw := newTestGateway("http://127.0.0.1:1")
	_, err := gw.FetchVehicleData(context.Background(), "AB12CDE")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.UpstreamUnavailable))
}
