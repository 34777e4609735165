package defi

import (
	"math"
	"testing"
)

func TestGetSwapQuote(t *testing.T) {
	hbar, _ := TokenByID("hbar")
	usdc, _ := TokenByID("usdc")

	quote := GetSwapQuote(hbar, usdc, 1000, 0.5)

	wantFee := 1000 * SwapFeePercent / 100
	if math.Abs(quote.Fee-wantFee) > 1e-9 {
		t.Errorf("Fee = %v, want %v", quote.Fee, wantFee)
	}
	wantRate := hbar.PriceUSD / usdc.PriceUSD
	if math.Abs(quote.ExchangeRate-wantRate) > 1e-9 {
		t.Errorf("ExchangeRate = %v, want %v", quote.ExchangeRate, wantRate)
	}
	wantTo := (1000 - wantFee) * wantRate
	if math.Abs(quote.ToAmount-wantTo) > 1e-9 {
		t.Errorf("ToAmount = %v, want %v", quote.ToAmount, wantTo)
	}
	wantMin := wantTo * (1 - 0.5/100)
	if math.Abs(quote.MinimumReceived-wantMin) > 1e-9 {
		t.Errorf("MinimumReceived = %v, want %v", quote.MinimumReceived, wantMin)
	}
}

func TestGetSwapQuoteInvariants(t *testing.T) {
	amounts := []float64{0.01, 1, 100, 10_000, 1_000_000}
	slippages := []float64{0, 0.1, 0.5, 1, 5}

	for _, from := range Tokens {
		for _, to := range Tokens {
			if from.ID == to.ID {
				continue
			}
			for _, amount := range amounts {
				for _, slip := range slippages {
					q := GetSwapQuote(from, to, amount, slip)
					if q.MinimumReceived > q.ToAmount {
						t.Fatalf("quote %s->%s amount=%v slip=%v: MinimumReceived %v > ToAmount %v",
							from.ID, to.ID, amount, slip, q.MinimumReceived, q.ToAmount)
					}
					if q.Fee < 0 {
						t.Fatalf("quote %s->%s amount=%v: negative fee %v", from.ID, to.ID, amount, q.Fee)
					}
					if q.PriceImpact < 0 || q.PriceImpact > 100 {
						t.Fatalf("quote %s->%s amount=%v: impact %v out of range", from.ID, to.ID, amount, q.PriceImpact)
					}
				}
			}
		}
	}
}

func TestGetSwapQuoteNonPositiveInput(t *testing.T) {
	hbar, _ := TokenByID("hbar")
	usdc, _ := TokenByID("usdc")

	for _, amount := range []float64{0, -5} {
		q := GetSwapQuote(hbar, usdc, amount, 0.5)
		if q.ToAmount != 0 || q.Fee != 0 || q.MinimumReceived != 0 {
			t.Errorf("GetSwapQuote(amount=%v) = %+v, want zero-output quote", amount, q)
		}
		if q.ExchangeRate == 0 {
			t.Errorf("GetSwapQuote(amount=%v): exchange rate should still be quoted", amount)
		}
	}
}

func TestImpactSeverity(t *testing.T) {
	tests := []struct {
		impact float64
		want   string
	}{
		{impact: 0, want: RiskLow},
		{impact: 0.99, want: RiskLow},
		{impact: 1.0, want: RiskMedium}, // at-threshold resolves to the stricter band
		{impact: 2.5, want: RiskMedium},
		{impact: 3.0, want: RiskHigh}, // at-threshold resolves to the stricter band
		{impact: 50, want: RiskHigh},
	}
	for _, tt := range tests {
		if got := ImpactSeverity(tt.impact); got != tt.want {
			t.Errorf("ImpactSeverity(%v) = %v, want %v", tt.impact, got, tt.want)
		}
	}
}
