package model

// RouletteColor is the pocket colour on a single-zero wheel
type RouletteColor string

const (
	ColorRed   RouletteColor = "red"
	ColorBlack RouletteColor = "black"
	ColorGreen RouletteColor = "green"
)

// RouletteBetKind is the type of wager placed on the layout
type RouletteBetKind string

const (
	BetStraight RouletteBetKind = "straight" // single number
	BetRed      RouletteBetKind = "red"
	BetBlack    RouletteBetKind = "black"
	BetEven     RouletteBetKind = "even"
	BetOdd      RouletteBetKind = "odd"
	BetLow      RouletteBetKind = "low"  // 1-18
	BetHigh     RouletteBetKind = "high" // 19-36
	BetDozen    RouletteBetKind = "dozen"
	BetColumn   RouletteBetKind = "column"
)

// RouletteBet is a wager selection. Number is the pocket for straight bets
// and the 1-based dozen or column index for those bets.
type RouletteBet struct {
	Kind   RouletteBetKind
	Number int
}

// RouletteDetails is the game-specific part of a roulette Outcome
type RouletteDetails struct {
	Bet    RouletteBet
	Number int
	Color  RouletteColor
}
