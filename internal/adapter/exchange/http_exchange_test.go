package exchange

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"escrow-settlement-engine/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Convert(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/convert", r.URL.Path)

		var req convertRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, domain.AssetID("ETH"), req.From)
		assert.Equal(t, domain.AssetID("USDC"), req.To)
		assert.Equal(t, int64(5000), req.Amount)

		json.NewEncoder(w).Encode(convertResponse{Received: 4980})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), zerolog.Nop())

	received, err := client.Convert(context.Background(), "ETH", "USDC", 5000, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4980), received)
}

func TestClient_Convert_VenueRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no route", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), zerolog.Nop())

	_, err := client.Convert(context.Background(), "ETH", "XYZ", 100, nil)
	assert.Error(t, err)
}

func TestClient_Convert_NegativeReceived(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(convertResponse{Received: -1})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client(), zerolog.Nop())

	_, err := client.Convert(context.Background(), "ETH", "USDC", 100, nil)
	assert.Error(t, err)
}
