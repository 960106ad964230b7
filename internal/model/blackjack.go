package model

// BlackjackState is the phase of a blackjack round
type BlackjackState string

const (
	BlackjackPlayerTurn BlackjackState = "player_turn"
	BlackjackComplete   BlackjackState = "complete"
)

// BlackjackResult is the settled result of a round
type BlackjackResult string

const (
	BlackjackPending       BlackjackResult = ""
	BlackjackPlayerNatural BlackjackResult = "blackjack"
	BlackjackPlayerWin     BlackjackResult = "win"
	BlackjackDealerBust    BlackjackResult = "dealer_bust"
	BlackjackPush          BlackjackResult = "push"
	BlackjackPlayerBust    BlackjackResult = "bust"
	BlackjackDealerWin     BlackjackResult = "lose"
)

// BlackjackRound holds one hand of blackjack from deal to settlement
type BlackjackRound struct {
	ID          string
	Bet         int64
	Deck        []Card
	Player      []Card
	Dealer      []Card
	State       BlackjackState
	Result      BlackjackResult
	Payout      int64
	PlayerValue int
	DealerValue int
	Natural     bool // the player's first two cards totalled 21
}

// IsComplete reports whether the round has been settled
func (r *BlackjackRound) IsComplete() bool {
	return r.State == BlackjackComplete
}

// Won reports whether the settled round counts as a win
func (r *BlackjackRound) Won() bool {
	switch r.Result {
	case BlackjackPlayerNatural, BlackjackPlayerWin, BlackjackDealerBust:
		return true
	}
	return false
}
