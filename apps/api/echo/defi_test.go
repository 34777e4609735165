package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web3versity/web3versity/core/defi"
)

func TestDefiReferenceData(t *testing.T) {
	env := newTestServer(t)

	rec := env.request(t, http.MethodGet, "/v1/defi/tokens", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tokens []defi.Token
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokens))
	assert.NotEmpty(t, tokens)

	rec = env.request(t, http.MethodGet, "/v1/defi/pools", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var pools []defi.LiquidityPool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pools))
	assert.NotEmpty(t, pools)
}

func TestDefiSwapQuote(t *testing.T) {
	env := newTestServer(t)

	rec := env.request(t, http.MethodPost, "/v1/defi/quote", SwapQuoteRequest{
		FromToken:         "hbar",
		ToToken:           "usdc",
		FromAmount:        1000,
		SlippageTolerance: 0.5,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var quote defi.SwapQuote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, "hbar", quote.FromToken)
	assert.InDelta(t, 3.0, quote.Fee, 1e-9) // 0.3% of 1000
	assert.True(t, quote.MinimumReceived <= quote.ToAmount)
	assert.True(t, quote.PriceImpact >= 0 && quote.PriceImpact <= 100)

	// unknown token
	rec = env.request(t, http.MethodPost, "/v1/defi/quote", SwapQuoteRequest{
		FromToken: "doge", ToToken: "usdc", FromAmount: 10,
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// same token both sides
	rec = env.request(t, http.MethodPost, "/v1/defi/quote", SwapQuoteRequest{
		FromToken: "hbar", ToToken: "hbar", FromAmount: 10,
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDefiRewards(t *testing.T) {
	env := newTestServer(t)

	rec := env.request(t, http.MethodPost, "/v1/defi/rewards", RewardsRequest{
		Amount: 100, APY: 12.5, DaysElapsed: 365,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp RewardsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 13.3, resp.Rewards, 0.5)
	assert.InDelta(t, resp.Rewards+100, resp.Total, 1e-9)

	rec = env.request(t, http.MethodPost, "/v1/defi/rewards", RewardsRequest{Amount: -1}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDefiWithdrawSimulation(t *testing.T) {
	env := newTestServer(t)

	rec := env.request(t, http.MethodPost, "/v1/defi/withdraw-simulation", WithdrawSimulationRequest{
		PoolID:    "p-hbar-usdc",
		Amount:    500,
		CreatedAt: time.Now().UTC().Add(-30 * 24 * time.Hour),
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res defi.WithdrawResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 500.0, res.Principal)
	assert.True(t, res.Rewards > 0)
	assert.InDelta(t, res.Principal+res.Rewards, res.Total, 1e-9)

	// unknown pools still return the principal
	rec = env.request(t, http.MethodPost, "/v1/defi/withdraw-simulation", WithdrawSimulationRequest{
		PoolID:    "p-gone",
		Amount:    500,
		CreatedAt: time.Now().UTC().Add(-30 * 24 * time.Hour),
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 500.0, res.Principal)
	assert.Zero(t, res.Rewards)
}
