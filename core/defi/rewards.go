package defi

import (
	"math"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// minDaysElapsed floors the elapsed time so a freshly opened position never
// hits a degenerate zero exponent.
const minDaysElapsed = 0.001

var (
	nowFunc = time.Now // mockable

	// errors
	ErrNoPosition    = errors.New("no open position")
	ErrPositionOpen  = errors.New("a position is already open; withdraw first")
	ErrUnknownPool   = errors.New("unknown pool")
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

// CalculateRewards computes compound interest accrued on amount at the given
// APY (a percentage, e.g. 12.5) over daysElapsed fractional days, compounding
// daily. Negative APY models a loss scenario; negative principal is the
// caller's problem.
func CalculateRewards(amount, apy, daysElapsed float64) float64 {
	if daysElapsed < minDaysElapsed {
		daysElapsed = minDaysElapsed
	}
	if amount == 0 {
		return 0
	}
	dailyRate := apy / 365 / 100
	return amount*math.Pow(1+dailyRate, daysElapsed) - amount
}

type (
	// Position associates a pool with a deposited amount. One per Simulator;
	// destroyed, not archived, on withdrawal.
	Position struct {
		PoolID    string    `json:"pool_id"`
		Amount    float64   `json:"amount"`
		CreatedAt time.Time `json:"created_at"` // UTC
	}

	WithdrawResult struct {
		Principal float64 `json:"principal"`
		Rewards   float64 `json:"rewards"`
		Total     float64 `json:"total"`
	}

	// Simulator models a learner's single simulated yield position.
	// Nothing is persisted; the position lives and dies with the instance.
	Simulator struct {
		mu       sync.Mutex
		position *Position
	}
)

func NewSimulator() *Simulator {
	return &Simulator{}
}

func (s *Simulator) Deposit(poolID string, amount float64) (Position, error) {
	if amount <= 0 {
		return Position{}, ErrInvalidAmount
	}
	if _, ok := PoolByID(poolID); !ok {
		return Position{}, ErrUnknownPool
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.position != nil {
		return Position{}, ErrPositionOpen
	}
	pos := Position{PoolID: poolID, Amount: amount, CreatedAt: nowFunc().UTC()}
	s.position = &pos
	return pos, nil
}

func (s *Simulator) Position() (Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.position == nil {
		return Position{}, false
	}
	return *s.position, true
}

func (s *Simulator) Withdraw() (WithdrawResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.position == nil {
		return WithdrawResult{}, ErrNoPosition
	}
	res := SimulateWithdraw(*s.position)
	s.position = nil
	return res, nil
}

// SimulateWithdraw recomputes elapsed time from the deposit timestamp to now
// and accrues rewards at the pool's APY. A pool id that has dropped out of
// the reference table yields the principal with zero rewards rather than an
// error; the learner always gets their (simulated) money back.
func SimulateWithdraw(pos Position) WithdrawResult {
	var apy float64
	if pool, ok := PoolByID(pos.PoolID); ok {
		apy = pool.APY
	}

	daysElapsed := nowFunc().Sub(pos.CreatedAt).Hours() / 24
	rewards := CalculateRewards(pos.Amount, apy, daysElapsed)
	return WithdrawResult{
		Principal: pos.Amount,
		Rewards:   rewards,
		Total:     pos.Amount + rewards,
	}
}
