package model

// HandRank is a five-card poker hand category, weakest first
type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var handRankNames = []string{
	"high card", "pair", "two pair", "three of a kind", "straight",
	"flush", "full house", "four of a kind", "straight flush", "royal flush",
}

// String returns the hand category name
func (h HandRank) String() string {
	if h < 0 || int(h) >= len(handRankNames) {
		return "unknown"
	}
	return handRankNames[h]
}

// HandValue is an evaluated five-card hand. Kickers hold the rank values
// (Ace high = 14) in tie-break order.
type HandValue struct {
	Rank    HandRank
	Kickers []int
	Cards   []Card
}

// VideoPokerState is the phase of a video poker round
type VideoPokerState string

const (
	VideoPokerDealt    VideoPokerState = "dealt"
	VideoPokerComplete VideoPokerState = "complete"
)

// VideoPokerRound is a single jacks-or-better hand
type VideoPokerRound struct {
	ID     string
	Bet    int64
	Deck   []Card
	Hand   []Card
	State  VideoPokerState
	Value  HandValue
	Payout int64
}
