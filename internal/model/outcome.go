package model

// GameType identifies one of the casino games
type GameType string

const (
	GameSlots     GameType = "slots"
	GameRoulette  GameType = "roulette"
	GameBlackjack GameType = "blackjack"
	GamePoker     GameType = "poker"
	GameDice      GameType = "dice"
)

// GameInfo is the lobby metadata for a game
type GameInfo struct {
	Type        GameType
	Title       string
	Description string
	MinBet      int64
	MaxWin      int64
}

// Games is the static game catalog in lobby order
var Games = []GameInfo{
	{Type: GameSlots, Title: "Slot Machine", Description: "Spin the reels and match symbols for big wins!", MinBet: 50, MaxWin: 5000},
	{Type: GameRoulette, Title: "Roulette Wheel", Description: "Place your bets and watch the wheel spin!", MinBet: 25, MaxWin: 3500},
	{Type: GameBlackjack, Title: "Blackjack", Description: "Beat the dealer and get as close to 21 as possible!", MinBet: 100, MaxWin: 2000},
	{Type: GamePoker, Title: "Poker", Description: "Hold the right cards and draw to a winning hand!", MinBet: 200, MaxWin: 10000},
	{Type: GameDice, Title: "Dice Game", Description: "Roll the dice and test your luck!", MinBet: 25, MaxWin: 1000},
}

// LookupGame returns the catalog entry for a game type
func LookupGame(t GameType) (GameInfo, bool) {
	for _, g := range Games {
		if g.Type == t {
			return g, true
		}
	}
	return GameInfo{}, false
}

// Outcome is the ephemeral result of one settled round.
// Payout includes the returned stake; zero means the stake was lost.
// Achievements lists game-specific achievements the round earned; the
// settling session unlocks them.
type Outcome struct {
	RoundID      string
	Game         GameType
	Bet          int64
	Payout       int64
	Won          bool
	Details      any // *SlotDetails, *RouletteDetails, *BlackjackRound, *DiceDetails or *VideoPokerRound
	Achievements []AchievementID
}

// Net returns the coin delta of the round including the stake
func (o Outcome) Net() int64 {
	return o.Payout - o.Bet
}
