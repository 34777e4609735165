package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/web3versity/web3versity/core"
	"github.com/web3versity/web3versity/core/defi"
)

type defiApi struct{}

func registerDefiAPI(g *echo.Group) {
	api := defiApi{}

	// reference data and quote math are public and stateless
	dg := g.Group("/defi")
	dg.GET("/tokens", api.tokens)
	dg.GET("/pools", api.pools)
	dg.POST("/quote", api.swapQuote)
	dg.POST("/rewards", api.rewards)
	dg.POST("/withdraw-simulation", api.simulateWithdraw)
}

// Handlers

func (api defiApi) tokens(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, defi.Tokens)
}

func (api defiApi) pools(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, defi.Pools)
}

func (api defiApi) swapQuote(ctx echo.Context) error {
	var data SwapQuoteRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SwapQuoteRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	from, ok := defi.TokenByID(data.FromToken)
	if !ok {
		return core.NewValidationError(nil, core.FieldError{Field: "from_token", Error: "unknown token"})
	}
	to, ok := defi.TokenByID(data.ToToken)
	if !ok {
		return core.NewValidationError(nil, core.FieldError{Field: "to_token", Error: "unknown token"})
	}

	quote := defi.GetSwapQuote(from, to, data.FromAmount, data.SlippageTolerance)
	return ctx.JSON(http.StatusOK, quote)
}

func (api defiApi) rewards(ctx echo.Context) error {
	var data RewardsRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RewardsRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	rewards := defi.CalculateRewards(data.Amount, data.APY, data.DaysElapsed)
	return ctx.JSON(http.StatusOK, RewardsResponse{Rewards: rewards, Total: data.Amount + rewards})
}

func (api defiApi) simulateWithdraw(ctx echo.Context) error {
	var data WithdrawSimulationRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to WithdrawSimulationRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	res := defi.SimulateWithdraw(defi.Position{
		PoolID:    data.PoolID,
		Amount:    data.Amount,
		CreatedAt: data.CreatedAt.UTC(),
	})
	return ctx.JSON(http.StatusOK, res)
}

type (
	SwapQuoteRequest struct {
		FromToken         string  `json:"from_token" validate:"required"`
		ToToken           string  `json:"to_token" validate:"required,nefield=FromToken"`
		FromAmount        float64 `json:"from_amount"`
		SlippageTolerance float64 `json:"slippage_tolerance" validate:"min=0,max=100"`
	}

	RewardsRequest struct {
		Amount      float64 `json:"amount" validate:"min=0"`
		APY         float64 `json:"apy" validate:"min=0"`
		DaysElapsed float64 `json:"days_elapsed" validate:"min=0"`
	}

	RewardsResponse struct {
		Rewards float64 `json:"rewards"`
		Total   float64 `json:"total"`
	}

	WithdrawSimulationRequest struct {
		PoolID    string    `json:"pool_id" validate:"required"`
		Amount    float64   `json:"amount" validate:"gt=0"`
		CreatedAt time.Time `json:"created_at" validate:"required"`
	}
)

func (sr *SwapQuoteRequest) Validate() error          { return core.Validate.Struct(sr) }
func (rr *RewardsRequest) Validate() error            { return core.Validate.Struct(rr) }
func (wr *WithdrawSimulationRequest) Validate() error { return core.Validate.Struct(wr) }
