package defi

import "math"

// SwapFeePercent is the fixed trading fee, taken from the input amount
// before conversion.
const SwapFeePercent = 0.3

// Price impact warning bands. An impact exactly at a cutoff resolves to the
// stricter band; hiding risk at the boundary is worse than overstating it.
const (
	impactMediumCutoff = 1.0
	impactHighCutoff   = 3.0
)

// SwapQuote is a derived snapshot, recomputed on every input change. It has
// no identity and no lifecycle.
type SwapQuote struct {
	FromToken       string  `json:"from_token"`
	ToToken         string  `json:"to_token"`
	FromAmount      float64 `json:"from_amount"`
	ToAmount        float64 `json:"to_amount"`
	ExchangeRate    float64 `json:"exchange_rate"`
	PriceImpact     float64 `json:"price_impact"`
	Fee             float64 `json:"fee"`
	MinimumReceived float64 `json:"minimum_received"`
	ImpactSeverity  string  `json:"impact_severity"`
}

// GetSwapQuote prices a swap between two reference tokens. A non-positive
// input degenerates to a zero-output quote rather than an error; callers
// must check for a non-positive ToAmount before allowing a swap to execute.
func GetSwapQuote(from, to Token, fromAmount, slippageTolerancePct float64) SwapQuote {
	rate := 0.0
	if to.PriceUSD > 0 {
		rate = from.PriceUSD / to.PriceUSD
	}

	quote := SwapQuote{
		FromToken:      from.ID,
		ToToken:        to.ID,
		ExchangeRate:   rate,
		ImpactSeverity: RiskLow,
	}
	if fromAmount <= 0 {
		return quote
	}

	fee := fromAmount * SwapFeePercent / 100
	toAmount := (fromAmount - fee) * rate

	// impact grows with trade size relative to the shallower side of the pair
	depth := math.Min(from.PoolDepthUSD, to.PoolDepthUSD)
	impact := 0.0
	if depth > 0 {
		impact = fromAmount * from.PriceUSD / depth * 100
	}
	if impact > 100 {
		impact = 100
	}

	quote.FromAmount = fromAmount
	quote.Fee = fee
	quote.ToAmount = toAmount
	quote.PriceImpact = impact
	quote.MinimumReceived = toAmount * (1 - slippageTolerancePct/100)
	quote.ImpactSeverity = ImpactSeverity(impact)
	return quote
}

// ImpactSeverity classifies a price impact percentage into a warning band.
func ImpactSeverity(impactPct float64) string {
	switch {
	case impactPct >= impactHighCutoff:
		return RiskHigh
	case impactPct >= impactMediumCutoff:
		return RiskMedium
	default:
		return RiskLow
	}
}
