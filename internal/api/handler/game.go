package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pocketcasino/internal/api/request"
	"github.com/mcoot/pocketcasino/internal/api/response"
	"github.com/mcoot/pocketcasino/internal/model"
	"github.com/mcoot/pocketcasino/internal/services/session"
)

// GameHandler handles the game endpoints
type GameHandler struct {
	session *session.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(sess *session.Service) *GameHandler {
	return &GameHandler{session: sess}
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GamesFromModel(model.Games))
}

// ValidateBet handles GET /api/v1/games/{game}/bets/{bet}. It reports
// whether a stake would be accepted without placing it.
func (h *GameHandler) ValidateBet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var req request.BetRequest
	if err := parseInt64(vars["bet"], &req.Bet); err != nil {
		WriteError(w, err)
		return
	}
	if err := h.session.ValidateBet(model.GameType(vars["game"]), req.Bet); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// SpinSlots handles POST /api/v1/slots/spin
func (h *GameHandler) SpinSlots(w http.ResponseWriter, r *http.Request) {
	var req request.BetRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	outcome, err := h.session.SpinSlots(req.Bet)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeOutcome(w, outcome)
}

// SpinRoulette handles POST /api/v1/roulette/spin
func (h *GameHandler) SpinRoulette(w http.ResponseWriter, r *http.Request) {
	var req request.RouletteRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	sel := model.RouletteBet{Kind: model.RouletteBetKind(req.Kind), Number: req.Number}
	outcome, err := h.session.SpinRoulette(req.Bet, sel)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeOutcome(w, outcome)
}

// RollDice handles POST /api/v1/dice/roll
func (h *GameHandler) RollDice(w http.ResponseWriter, r *http.Request) {
	var req request.DiceRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	outcome, err := h.session.RollDice(req.Bet, model.DiceBet(req.Pick))
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeOutcome(w, outcome)
}

// StartBlackjack handles POST /api/v1/blackjack
func (h *GameHandler) StartBlackjack(w http.ResponseWriter, r *http.Request) {
	var req request.BetRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	turn, err := h.session.StartBlackjack(req.Bet)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeTurn(w, http.StatusCreated, turn)
}

// GetBlackjack handles GET /api/v1/blackjack
func (h *GameHandler) GetBlackjack(w http.ResponseWriter, r *http.Request) {
	round := h.session.ActiveBlackjack()
	if round == nil {
		WriteError(w, model.ErrNoActiveRound)
		return
	}
	h.writeTurn(w, http.StatusOK, session.BlackjackTurn{Round: round})
}

// HitBlackjack handles POST /api/v1/blackjack/hit
func (h *GameHandler) HitBlackjack(w http.ResponseWriter, r *http.Request) {
	turn, err := h.session.HitBlackjack()
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeTurn(w, http.StatusOK, turn)
}

// StandBlackjack handles POST /api/v1/blackjack/stand
func (h *GameHandler) StandBlackjack(w http.ResponseWriter, r *http.Request) {
	turn, err := h.session.StandBlackjack()
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeTurn(w, http.StatusOK, turn)
}

// DealPoker handles POST /api/v1/poker
func (h *GameHandler) DealPoker(w http.ResponseWriter, r *http.Request) {
	var req request.BetRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	round, err := h.session.StartPoker(req.Bet)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.Created(w, response.PokerDeal{
		Round: response.PokerRoundFromModel(round),
		Coins: h.session.Progression().Coins(),
	})
}

// GetPoker handles GET /api/v1/poker
func (h *GameHandler) GetPoker(w http.ResponseWriter, r *http.Request) {
	round := h.session.ActivePoker()
	if round == nil {
		WriteError(w, model.ErrNoActiveRound)
		return
	}
	response.JSON(w, http.StatusOK, response.PokerDeal{
		Round: response.PokerRoundFromModel(round),
		Coins: h.session.Progression().Coins(),
	})
}

// DrawPoker handles POST /api/v1/poker/draw
func (h *GameHandler) DrawPoker(w http.ResponseWriter, r *http.Request) {
	var req request.PokerDrawRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	outcome, err := h.session.DrawPoker(req.Holds)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.writeOutcome(w, outcome)
}

func (h *GameHandler) writeOutcome(w http.ResponseWriter, outcome model.Outcome) {
	coins := h.session.Progression().Coins()
	response.JSON(w, http.StatusOK, response.OutcomeFromModel(outcome, coins))
}

func (h *GameHandler) writeTurn(w http.ResponseWriter, status int, turn session.BlackjackTurn) {
	coins := h.session.Progression().Coins()
	resp := response.BlackjackTurn{
		Round: response.BlackjackRoundFromModel(turn.Round),
		Coins: coins,
	}
	if turn.Outcome != nil {
		o := response.OutcomeFromModel(*turn.Outcome, coins)
		resp.Outcome = &o
	}
	response.JSON(w, status, resp)
}
