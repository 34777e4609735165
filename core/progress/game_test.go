package progress

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []GameItem {
	return []GameItem{
		{Prompt: "Airdrop requires your seed phrase", Scam: true},
		{Prompt: "Exchange asks for KYC documents", Scam: false},
		{Prompt: "Admin DMs you about a refund", Scam: true},
		{Prompt: "Wallet prompts to verify a transaction", Scam: false},
	}
}

func startedGame(seed int64) *MatchGame {
	g := NewMatchGameWithRand(testItems(), 10, 5, rand.New(rand.NewSource(seed)))
	g.Start()
	return g
}

func TestMatchGameScoring(t *testing.T) {
	g := startedGame(1)
	require.Equal(t, GamePlaying, g.State())
	assert.Equal(t, StartingLives, g.Lives())

	// wrong answer: lose a life, streak stays at zero
	g.Answer(!g.CurrentItem().Scam)
	assert.Equal(t, 2, g.Lives())
	assert.Zero(t, g.Streak())
	assert.Zero(t, g.Score())

	// first correct answer scores the base only
	assert.True(t, g.Answer(g.CurrentItem().Scam))
	assert.Equal(t, 1, g.Streak())
	assert.Equal(t, 10, g.Score())

	// second in a row adds the streak bonus
	g.Answer(g.CurrentItem().Scam)
	assert.Equal(t, 2, g.Streak())
	assert.Equal(t, 10+10+1*5, g.Score())

	g.Answer(g.CurrentItem().Scam)
	assert.Equal(t, GameWon, g.State())
	assert.Equal(t, 10+15+10+2*5, g.Score())
}

func TestMatchGameGameOver(t *testing.T) {
	g := startedGame(2)
	for i := 0; i < StartingLives; i++ {
		g.Answer(!g.CurrentItem().Scam)
	}
	assert.Equal(t, GameOver, g.State())
	assert.Zero(t, g.Lives())
	assert.False(t, g.Answer(true), "answers after game over are ignored")

	g.Restart()
	assert.Equal(t, GamePlaying, g.State())
	assert.Equal(t, StartingLives, g.Lives())
	assert.Zero(t, g.Streak())
	assert.Zero(t, g.Score())
}

func TestMatchGameStreakResetOnWrong(t *testing.T) {
	g := startedGame(3)
	g.Answer(g.CurrentItem().Scam)
	g.Answer(g.CurrentItem().Scam)
	require.Equal(t, 2, g.Streak())

	g.Answer(!g.CurrentItem().Scam)
	assert.Zero(t, g.Streak())
	assert.Equal(t, 2, g.Lives())
	assert.Equal(t, 15, g.Score(), "wrong answers never deduct points")
}

func TestMatchGameShufflesPerStart(t *testing.T) {
	items := make([]GameItem, 8)
	for i := range items {
		items[i] = GameItem{Prompt: string(rune('a' + i)), Scam: i%2 == 0}
	}
	g := NewMatchGameWithRand(items, 10, 5, rand.New(rand.NewSource(4)))
	g.Start()
	first := make([]int, len(g.order))
	copy(first, g.order)

	for i := 0; i < StartingLives; i++ {
		g.Answer(!g.CurrentItem().Scam)
	}
	g.Restart()
	assert.NotEqual(t, first, g.order)
}

func TestMatchGameNoItems(t *testing.T) {
	g := NewMatchGameWithRand(nil, 10, 5, rand.New(rand.NewSource(6)))
	g.Start()
	assert.Equal(t, GameWon, g.State(), "an empty round is won immediately")
	assert.Equal(t, GameItem{}, g.CurrentItem())
	assert.False(t, g.Answer(true))
	assert.Zero(t, g.Score())

	g.Restart()
	assert.Equal(t, GameWon, g.State())
}

func TestMatchGameStartOnlyFromIntro(t *testing.T) {
	g := startedGame(5)
	g.Answer(g.CurrentItem().Scam)
	g.Start()
	assert.Equal(t, 1, g.Streak(), "start mid-round is a no-op")
	g.Restart()
	assert.Equal(t, 1, g.Streak(), "restart mid-round is a no-op")
}
