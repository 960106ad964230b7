package model

// DiceBet is a wager on the sum of two dice
type DiceBet string

const (
	DiceOver    DiceBet = "over"    // sum 8-12
	DiceUnder   DiceBet = "under"   // sum 2-6
	DiceSeven   DiceBet = "seven"   // sum exactly 7
	DiceDoubles DiceBet = "doubles" // both dice equal
)

// DiceDetails is the game-specific part of a dice Outcome
type DiceDetails struct {
	Bet  DiceBet
	Dice [2]int
	Sum  int
}
