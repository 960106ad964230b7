package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pocketcasino/internal/api/handler"
	"github.com/mcoot/pocketcasino/internal/api/middleware"
	"github.com/mcoot/pocketcasino/internal/api/response"
	"github.com/mcoot/pocketcasino/internal/services/session"
	"github.com/mcoot/pocketcasino/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger  *slog.Logger
	Session *session.Service
	Hub     *sse.Hub // nil disables the event stream

	// AllowRemote skips the loopback check
	AllowRemote bool
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.Session)
	playerHandler := handler.NewPlayerHandler(cfg.Session)
	eventsHandler := handler.NewEventsHandler(cfg.Hub)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))
	if !cfg.AllowRemote {
		api.Use(middleware.LocalOnly())
	}

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Player record
	api.HandleFunc("/state", playerHandler.State).Methods(http.MethodGet)
	api.HandleFunc("/daily", playerHandler.ClaimDaily).Methods(http.MethodPost)
	api.HandleFunc("/leaderboard", playerHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", playerHandler.AddToLeaderboard).Methods(http.MethodPost)
	api.HandleFunc("/achievements", playerHandler.Achievements).Methods(http.MethodGet)
	api.HandleFunc("/settings", playerHandler.Settings).Methods(http.MethodGet)
	api.HandleFunc("/settings", playerHandler.UpdateSettings).Methods(http.MethodPatch)
	api.HandleFunc("/settings/sound", playerHandler.ToggleSound).Methods(http.MethodPost)
	api.HandleFunc("/reset", playerHandler.Reset).Methods(http.MethodPost)
	api.HandleFunc("/save", playerHandler.Save).Methods(http.MethodPost)

	// Games
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{game}/bets/{bet}", gameHandler.ValidateBet).Methods(http.MethodGet)
	api.HandleFunc("/slots/spin", gameHandler.SpinSlots).Methods(http.MethodPost)
	api.HandleFunc("/roulette/spin", gameHandler.SpinRoulette).Methods(http.MethodPost)
	api.HandleFunc("/dice/roll", gameHandler.RollDice).Methods(http.MethodPost)
	api.HandleFunc("/blackjack", gameHandler.StartBlackjack).Methods(http.MethodPost)
	api.HandleFunc("/blackjack", gameHandler.GetBlackjack).Methods(http.MethodGet)
	api.HandleFunc("/blackjack/hit", gameHandler.HitBlackjack).Methods(http.MethodPost)
	api.HandleFunc("/blackjack/stand", gameHandler.StandBlackjack).Methods(http.MethodPost)
	api.HandleFunc("/poker", gameHandler.DealPoker).Methods(http.MethodPost)
	api.HandleFunc("/poker", gameHandler.GetPoker).Methods(http.MethodGet)
	api.HandleFunc("/poker/draw", gameHandler.DrawPoker).Methods(http.MethodPost)

	api.HandleFunc("/events", eventsHandler.Stream).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
