package progress

import (
	"math/rand"
	"time"
)

// Match game states
const (
	GameIntro   = "intro"
	GamePlaying = "playing"
	GameOver    = "gameover"
	GameWon     = "won"
)

// StartingLives is the number of wrong answers a round survives.
const StartingLives = 3

// GameItem is one card in a classification mini-game; the learner decides
// whether it is a scam.
type GameItem struct {
	Prompt      string `json:"prompt"`
	Scam        bool   `json:"scam"`
	Explanation string `json:"explanation,omitempty"`
}

// MatchGame is the state machine for the scam-spotter style mini-game:
// intro -> playing -> gameover | won. Items are reshuffled on every start
// so retries see a different order.
type MatchGame struct {
	items          []GameItem
	basePoints     int
	bonusPerStreak int
	rng            *rand.Rand

	state  string
	order  []int
	index  int
	lives  int
	streak int
	score  int
}

func NewMatchGame(items []GameItem, basePoints, bonusPerStreak int) *MatchGame {
	return NewMatchGameWithRand(items, basePoints, bonusPerStreak, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewMatchGameWithRand takes an explicit randomness source for deterministic
// shuffles in tests.
func NewMatchGameWithRand(items []GameItem, basePoints, bonusPerStreak int, rng *rand.Rand) *MatchGame {
	return &MatchGame{
		items:          items,
		basePoints:     basePoints,
		bonusPerStreak: bonusPerStreak,
		rng:            rng,
		state:          GameIntro,
	}
}

func (g *MatchGame) State() string { return g.state }
func (g *MatchGame) Lives() int    { return g.lives }
func (g *MatchGame) Streak() int   { return g.streak }
func (g *MatchGame) Score() int    { return g.score }

// Start begins a round from the intro screen.
func (g *MatchGame) Start() {
	if g.state != GameIntro {
		return
	}
	g.begin()
}

// Restart begins a fresh round after a win or a game over, with lives,
// streak, score and item order all reset.
func (g *MatchGame) Restart() {
	if g.state != GameOver && g.state != GameWon {
		return
	}
	g.begin()
}

func (g *MatchGame) begin() {
	g.order = g.rng.Perm(len(g.items))
	g.index = 0
	g.lives = StartingLives
	g.streak = 0
	g.score = 0
	if len(g.items) == 0 {
		// nothing to classify, the round is trivially over
		g.state = GameWon
		return
	}
	g.state = GamePlaying
}

// CurrentItem returns the item on screen; zero value outside of play.
func (g *MatchGame) CurrentItem() GameItem {
	if g.state != GamePlaying {
		return GameItem{}
	}
	return g.items[g.order[g.index]]
}

// Answer classifies the current item. A correct answer scores
// basePoints + streak*bonusPerStreak (streak as it stood before this
// answer) and extends the streak; a wrong answer costs a life and resets
// the streak.
func (g *MatchGame) Answer(isScam bool) bool {
	if g.state != GamePlaying {
		return false
	}

	correct := g.CurrentItem().Scam == isScam
	if correct {
		g.score += g.basePoints + g.streak*g.bonusPerStreak
		g.streak++
	} else {
		g.lives--
		g.streak = 0
		if g.lives == 0 {
			g.state = GameOver
			return false
		}
	}

	g.index++
	if g.index == len(g.items) {
		g.state = GameWon
	}
	return correct
}
