package defi

// Risk tiers
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

type (
	// Token is static reference data for the swap simulator. Prices are
	// fixed reference values, not live quotes.
	Token struct {
		ID           string  `json:"id"`
		Symbol       string  `json:"symbol"`
		Name         string  `json:"name"`
		PriceUSD     float64 `json:"price_usd"`
		PoolDepthUSD float64 `json:"pool_depth_usd"`
	}

	// LiquidityPool is static reference data for the yield simulator.
	LiquidityPool struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Pair        string  `json:"pair"`
		Protocol    string  `json:"protocol"`
		TVL         float64 `json:"tvl"`
		APY         float64 `json:"apy"`
		Risk        string  `json:"risk"`
		Description string  `json:"description"`
	}
)

// Reference tables, immutable for the process lifetime.
var (
	Tokens = []Token{
		{ID: "hbar", Symbol: "HBAR", Name: "Hedera", PriceUSD: 0.07, PoolDepthUSD: 2_500_000},
		{ID: "usdc", Symbol: "USDC", Name: "USD Coin", PriceUSD: 1.00, PoolDepthUSD: 5_000_000},
		{ID: "sauce", Symbol: "SAUCE", Name: "SaucerSwap", PriceUSD: 0.015, PoolDepthUSD: 400_000},
		{ID: "grelf", Symbol: "GRELF", Name: "Grelf", PriceUSD: 0.002, PoolDepthUSD: 60_000},
	}

	Pools = []LiquidityPool{
		{
			ID: "p-hbar-usdc", Name: "HBAR/USDC Stable Pair", Pair: "HBAR-USDC",
			Protocol: "SaucerSwap", TVL: 4_200_000, APY: 8.5, Risk: RiskLow,
			Description: "The deepest pool on the simulator; steady fees, low volatility.",
		},
		{
			ID: "p-sauce-hbar", Name: "SAUCE/HBAR Farm", Pair: "SAUCE-HBAR",
			Protocol: "SaucerSwap", TVL: 850_000, APY: 24.0, Risk: RiskMedium,
			Description: "Protocol token pair; rewards are higher and so are swings.",
		},
		{
			ID: "p-grelf-usdc", Name: "GRELF/USDC Degen Pool", Pair: "GRELF-USDC",
			Protocol: "HeliSwap", TVL: 95_000, APY: 142.0, Risk: RiskHigh,
			Description: "A new token with a shallow pool. Teaching example for what not to ape into.",
		},
	}
)

func TokenByID(id string) (Token, bool) {
	for _, t := range Tokens {
		if t.ID == id {
			return t, true
		}
	}
	return Token{}, false
}

func PoolByID(id string) (LiquidityPool, bool) {
	for _, p := range Pools {
		if p.ID == id {
			return p, true
		}
	}
	return LiquidityPool{}, false
}
