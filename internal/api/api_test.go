package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pocketcasino/internal/api"
	"github.com/mcoot/pocketcasino/internal/api/apierr"
	"github.com/mcoot/pocketcasino/internal/api/response"
	"github.com/mcoot/pocketcasino/internal/factory"
	"github.com/mcoot/pocketcasino/internal/model"
	"github.com/mcoot/pocketcasino/internal/testutil"
)

// testServer routes requests to an app with mocked clock and randomness.
// With an empty random queue every draw is 0, so a fresh deck deals
// 2S 3S 4S 5S 6S 7S 8S ... in order.
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	t.Cleanup(func() { _ = app.Close(context.Background()) })

	router := api.NewRouter(api.RouterConfig{
		Logger:  testutil.NopLogger(),
		Session: app.Session,
		Hub:     app.Hub,
	})
	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&reqBody).Encode(body)
	}

	req := httptest.NewRequest(method, path, &reqBody)
	req.RemoteAddr = "127.0.0.1:50000"
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func assertError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rr.Code, rr.Body.String())
	errResp := decodeBody[apierr.ErrorResponse](t, rr)
	assert.Equal(t, code, errResp.Error.Code)
	assert.NotEmpty(t, errResp.Error.Message)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decodeBody[response.Health](t, rr).Status)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestRemoteClientsAreRejected(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assertError(t, rr, http.StatusForbidden, apierr.CodeForbidden)
}

func TestAllowRemote(t *testing.T) {
	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:      testutil.NopLogger(),
		Session:     app.Session,
		AllowRemote: true,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInitialState(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/state", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	state := decodeBody[response.State](t, rr)
	assert.Equal(t, model.StartingCoins, state.Coins)
	assert.Len(t, state.Achievements, 6)
	assert.Empty(t, state.Leaderboard)
	assert.True(t, state.CanClaimDaily)
	assert.Nil(t, state.LastDailyReward)
	assert.True(t, state.Settings.SoundEnabled)
}

func TestGames(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	games := decodeBody[[]response.Game](t, rr)
	require.Len(t, games, 5)
	assert.Equal(t, "roulette", games[1].Type)
	assert.Equal(t, int64(25), games[1].MinBet)
}

func TestValidateBet(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"accepted", "/api/v1/games/blackjack/bets/100", http.StatusNoContent, ""},
		{"below minimum", "/api/v1/games/blackjack/bets/99", http.StatusBadRequest, apierr.CodeBetBelowMinimum},
		{"zero", "/api/v1/games/slots/bets/0", http.StatusBadRequest, apierr.CodeInvalidBet},
		{"over balance", "/api/v1/games/slots/bets/5001", http.StatusConflict, apierr.CodeInsufficientFunds},
		{"unknown game", "/api/v1/games/keno/bets/100", http.StatusNotFound, apierr.CodeUnknownGame},
		{"not a number", "/api/v1/games/slots/bets/lots", http.StatusBadRequest, apierr.CodeInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodGet, tt.path, nil)
			if tt.code == "" {
				assert.Equal(t, tt.status, rr.Code)
				return
			}
			assertError(t, rr, tt.status, tt.code)
		})
	}
	assert.Equal(t, model.StartingCoins, ts.app.Progression.Coins())
}

func TestSpinSlotsJackpot(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueIntn(7, 7, 7)

	rr := ts.request(http.MethodPost, "/api/v1/slots/spin", map[string]any{"bet": 50})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	outcome := decodeBody[response.Outcome](t, rr)
	assert.Equal(t, "slots", outcome.Game)
	assert.Equal(t, int64(10000), outcome.Payout)
	assert.Equal(t, int64(9950), outcome.Net)
	assert.True(t, outcome.Won)
	assert.Contains(t, outcome.Achievements, string(model.AchievementJackpot))
	require.NotNil(t, outcome.Slots)
	assert.Equal(t, "jackpot", outcome.Slots.Tier)
	assert.Equal(t, model.StartingCoins+9950, outcome.Coins)
	assert.Nil(t, outcome.Roulette)
}

func TestSpinSlotsErrors(t *testing.T) {
	ts := newTestServer(t)

	assertError(t, ts.request(http.MethodPost, "/api/v1/slots/spin", map[string]any{"bet": 10}),
		http.StatusBadRequest, apierr.CodeBetBelowMinimum)
	assertError(t, ts.request(http.MethodPost, "/api/v1/slots/spin", map[string]any{"bet": 9000}),
		http.StatusConflict, apierr.CodeInsufficientFunds)
	assertError(t, ts.request(http.MethodPost, "/api/v1/slots/spin", map[string]any{"stake": 50}),
		http.StatusBadRequest, apierr.CodeInvalidRequest)

	assert.Zero(t, ts.app.MockRandom.Draws())
	assert.Equal(t, model.StartingCoins, ts.app.Progression.Coins())
}

func TestSpinRouletteStraightWin(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueIntn(17)

	rr := ts.request(http.MethodPost, "/api/v1/roulette/spin", map[string]any{"bet": 25, "kind": "straight", "number": 17})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	outcome := decodeBody[response.Outcome](t, rr)
	assert.Equal(t, int64(900), outcome.Payout)
	require.NotNil(t, outcome.Roulette)
	assert.Equal(t, 17, outcome.Roulette.Number)
	assert.Equal(t, "black", outcome.Roulette.Color)
	assert.Contains(t, outcome.Achievements, string(model.AchievementRouletteLucky))
	assert.Equal(t, model.StartingCoins-25+900, outcome.Coins)
}

func TestSpinRouletteInvalidSelection(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/roulette/spin", map[string]any{"bet": 25, "kind": "dozen", "number": 4})
	assertError(t, rr, http.StatusBadRequest, apierr.CodeInvalidRouletteBet)
	assert.Equal(t, model.StartingCoins, ts.app.Progression.Coins())
}

func TestRollDice(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueIntn(3, 3)

	rr := ts.request(http.MethodPost, "/api/v1/dice/roll", map[string]any{"bet": 100, "pick": "doubles"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	outcome := decodeBody[response.Outcome](t, rr)
	require.NotNil(t, outcome.Dice)
	assert.Equal(t, [2]int{4, 4}, outcome.Dice.Dice)
	assert.Equal(t, 8, outcome.Dice.Sum)
	assert.Equal(t, int64(500), outcome.Payout)

	assertError(t, ts.request(http.MethodPost, "/api/v1/dice/roll", map[string]any{"bet": 100, "pick": "snake_eyes"}),
		http.StatusBadRequest, apierr.CodeInvalidDiceBet)
}

func TestBlackjackRound(t *testing.T) {
	ts := newTestServer(t)

	// player 2S 4S, dealer 3S 5S
	rr := ts.request(http.MethodPost, "/api/v1/blackjack", map[string]any{"bet": 100})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	turn := decodeBody[response.BlackjackTurn](t, rr)
	assert.Nil(t, turn.Outcome)
	assert.Equal(t, "player_turn", turn.Round.State)
	assert.Equal(t, 6, turn.Round.PlayerValue)
	require.Len(t, turn.Round.Dealer, 1, "hole card must stay hidden")
	assert.Equal(t, 3, turn.Round.DealerValue)
	assert.Equal(t, model.StartingCoins-100, turn.Coins)

	assertError(t, ts.request(http.MethodPost, "/api/v1/blackjack", map[string]any{"bet": 100}),
		http.StatusConflict, apierr.CodeRoundInProgress)

	rr = ts.request(http.MethodGet, "/api/v1/blackjack", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[response.BlackjackTurn](t, rr).Round.Dealer, 1)

	// hit 6S -> 12
	rr = ts.request(http.MethodPost, "/api/v1/blackjack/hit", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	turn = decodeBody[response.BlackjackTurn](t, rr)
	assert.Equal(t, 12, turn.Round.PlayerValue)
	assert.Nil(t, turn.Outcome)

	// dealer 8 draws 7S and 8S and busts
	rr = ts.request(http.MethodPost, "/api/v1/blackjack/stand", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	turn = decodeBody[response.BlackjackTurn](t, rr)
	require.NotNil(t, turn.Outcome)
	assert.Equal(t, "complete", turn.Round.State)
	assert.Equal(t, "dealer_bust", turn.Round.Result)
	assert.Len(t, turn.Round.Dealer, 4)
	assert.Equal(t, 23, turn.Round.DealerValue)
	assert.Equal(t, int64(200), turn.Outcome.Payout)
	assert.Equal(t, model.StartingCoins+100, turn.Coins)

	assertError(t, ts.request(http.MethodPost, "/api/v1/blackjack/hit", nil),
		http.StatusNotFound, apierr.CodeNoActiveRound)
	assertError(t, ts.request(http.MethodGet, "/api/v1/blackjack", nil),
		http.StatusNotFound, apierr.CodeNoActiveRound)
}

func TestPokerRound(t *testing.T) {
	ts := newTestServer(t)

	assertError(t, ts.request(http.MethodPost, "/api/v1/poker/draw", map[string]any{"holds": []int{}}),
		http.StatusNotFound, apierr.CodeNoActiveRound)

	// dealt 2S..6S, a straight flush
	rr := ts.request(http.MethodPost, "/api/v1/poker", map[string]any{"bet": 200})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	deal := decodeBody[response.PokerDeal](t, rr)
	assert.Len(t, deal.Round.Hand, 5)
	assert.Equal(t, model.StartingCoins-200, deal.Coins)

	rr = ts.request(http.MethodGet, "/api/v1/poker", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, deal.Round.Hand, decodeBody[response.PokerDeal](t, rr).Round.Hand)

	assertError(t, ts.request(http.MethodPost, "/api/v1/poker/draw", map[string]any{"holds": []int{5}}),
		http.StatusBadRequest, apierr.CodeInvalidHold)

	rr = ts.request(http.MethodPost, "/api/v1/poker/draw", map[string]any{"holds": []int{0, 1, 2, 3, 4}})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	outcome := decodeBody[response.Outcome](t, rr)
	require.NotNil(t, outcome.Poker)
	assert.Equal(t, deal.Round.Hand, outcome.Poker.Hand)
	assert.Equal(t, int64(10000), outcome.Payout)
	assert.Equal(t, model.StartingCoins-200+10000, outcome.Coins)
}

func TestDailyReward(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueIntn(150)

	rr := ts.request(http.MethodPost, "/api/v1/daily", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	reward := decodeBody[response.DailyReward](t, rr)
	assert.True(t, reward.Success)
	assert.Equal(t, int64(250), reward.Amount)
	assert.Equal(t, model.StartingCoins+250, reward.Coins)

	rr = ts.request(http.MethodPost, "/api/v1/daily", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.False(t, decodeBody[response.DailyReward](t, rr).Success)

	ts.app.MockClock.Advance(24*time.Hour + time.Second)
	rr = ts.request(http.MethodPost, "/api/v1/daily", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLeaderboard(t *testing.T) {
	ts := newTestServer(t)

	assertError(t, ts.request(http.MethodPost, "/api/v1/leaderboard", map[string]any{"name": "  "}),
		http.StatusBadRequest, apierr.CodeInvalidName)

	rr := ts.request(http.MethodPost, "/api/v1/leaderboard", map[string]any{"name": " Ada "})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	added := decodeBody[response.LeaderboardAdded](t, rr)
	assert.Equal(t, 1, added.Rank)
	require.Len(t, added.Entries, 1)
	assert.Equal(t, "Ada", added.Entries[0].Name)

	rr = ts.request(http.MethodGet, "/api/v1/leaderboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	board := decodeBody[response.Leaderboard](t, rr)
	assert.Len(t, board.Entries, 1)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, 2, board.ProjectedRank, "a tie with an existing entry ranks behind it")

	ts.app.MockRandom.QueueIntn(2, 2)
	rr = ts.request(http.MethodPost, "/api/v1/dice/roll", map[string]any{"bet": 100, "pick": "doubles"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	board = decodeBody[response.Leaderboard](t, ts.request(http.MethodGet, "/api/v1/leaderboard", nil))
	assert.Equal(t, 1, board.ProjectedRank)
}

func TestAchievements(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueIntn(7, 7, 7)
	ts.request(http.MethodPost, "/api/v1/slots/spin", map[string]any{"bet": 50})

	rr := ts.request(http.MethodGet, "/api/v1/achievements", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody[response.Achievements](t, rr)
	assert.Len(t, body.Achievements, 6)
	assert.GreaterOrEqual(t, body.Unlocked, 2)
	assert.Len(t, body.Progress, 6)

	unlocked := map[string]bool{}
	for _, a := range body.Achievements {
		unlocked[a.ID] = a.Unlocked
	}
	assert.True(t, unlocked[string(model.AchievementFirstWin)])
	assert.True(t, unlocked[string(model.AchievementJackpot)])
}

func TestSettings(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPatch, "/api/v1/settings", map[string]any{"high_contrast": true})
	require.Equal(t, http.StatusOK, rr.Code)
	settings := decodeBody[response.Settings](t, rr)
	assert.True(t, settings.HighContrast)
	assert.True(t, settings.SoundEnabled)
	assert.False(t, settings.LargeText)

	rr = ts.request(http.MethodPost, "/api/v1/settings/sound", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decodeBody[response.SoundToggled](t, rr).SoundEnabled)

	rr = ts.request(http.MethodGet, "/api/v1/settings", nil)
	settings = decodeBody[response.Settings](t, rr)
	assert.False(t, settings.SoundEnabled)
	assert.True(t, settings.HighContrast)
}

func TestResetAndSave(t *testing.T) {
	ts := newTestServer(t)
	ts.request(http.MethodPost, "/api/v1/dice/roll", map[string]any{"bet": 100, "pick": "over"})
	ts.request(http.MethodPost, "/api/v1/blackjack", map[string]any{"bet": 100})

	rr := ts.request(http.MethodPost, "/api/v1/save", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeBody[response.Saved](t, rr).Saved)

	rr = ts.request(http.MethodPost, "/api/v1/reset", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decodeBody[response.Saved](t, rr).Saved)

	state := decodeBody[response.State](t, ts.request(http.MethodGet, "/api/v1/state", nil))
	assert.Equal(t, model.StartingCoins, state.Coins)
	assert.Zero(t, state.Stats.GamesPlayed)
	assertError(t, ts.request(http.MethodGet, "/api/v1/blackjack", nil),
		http.StatusNotFound, apierr.CodeNoActiveRound)
}

func TestSaveAndResetReportStorageFailure(t *testing.T) {
	store := testutil.NewFlakyStorage()
	app := factory.NewTestAppWithStorage(store)
	t.Cleanup(func() { _ = app.Close(context.Background()) })
	ts := &testServer{
		handler: api.NewRouter(api.RouterConfig{Logger: testutil.NopLogger(), Session: app.Session, Hub: app.Hub}),
		app:     app,
	}
	store.FailWrites(true)

	for _, path := range []string{"/api/v1/save", "/api/v1/reset"} {
		rr := ts.request(http.MethodPost, path, nil)
		require.Equal(t, http.StatusServiceUnavailable, rr.Code, path)
		assert.False(t, decodeBody[response.Saved](t, rr).Saved, path)
	}

	store.FailWrites(false)
	rr := ts.request(http.MethodPost, "/api/v1/reset", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestEventsWithoutHub(t *testing.T) {
	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:  testutil.NopLogger(),
		Session: app.Session,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.RemoteAddr = "127.0.0.1:50000"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assertError(t, rr, http.StatusNotFound, apierr.CodeNotFound)
}
