package handler

import (
	"net/http"

	"github.com/mcoot/pocketcasino/internal/api/request"
	"github.com/mcoot/pocketcasino/internal/api/response"
	"github.com/mcoot/pocketcasino/internal/model"
	"github.com/mcoot/pocketcasino/internal/services/achievement"
	"github.com/mcoot/pocketcasino/internal/services/progression"
	"github.com/mcoot/pocketcasino/internal/services/session"
)

// PlayerHandler handles the player record endpoints
type PlayerHandler struct {
	session     *session.Service
	progression *progression.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(sess *session.Service) *PlayerHandler {
	return &PlayerHandler{
		session:     sess,
		progression: sess.Progression(),
	}
}

// State handles GET /api/v1/state
func (h *PlayerHandler) State(w http.ResponseWriter, r *http.Request) {
	p := h.progression.Snapshot()
	response.JSON(w, http.StatusOK, response.StateFromModel(
		p,
		h.progression.CanClaimDailyReward(),
		h.progression.NextDailyReward(),
	))
}

// ClaimDaily handles POST /api/v1/daily
func (h *PlayerHandler) ClaimDaily(w http.ResponseWriter, r *http.Request) {
	result := h.progression.ClaimDailyReward()
	status := http.StatusOK
	if !result.Success {
		status = http.StatusConflict
	}
	response.JSON(w, status, response.DailyRewardFromModel(result, h.progression.Coins()))
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *PlayerHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	p := h.progression.Snapshot()
	response.JSON(w, http.StatusOK, response.Leaderboard{
		Entries:       response.LeaderboardFromModel(p.Leaderboard),
		ProjectedRank: h.progression.ProjectedRank(),
	})
}

// AddToLeaderboard handles POST /api/v1/leaderboard
func (h *PlayerHandler) AddToLeaderboard(w http.ResponseWriter, r *http.Request) {
	var req request.LeaderboardRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	rank, err := h.progression.AddToLeaderboard(req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	p := h.progression.Snapshot()
	response.Created(w, response.LeaderboardAdded{
		Rank:    rank,
		Entries: response.LeaderboardFromModel(p.Leaderboard),
	})
}

// Achievements handles GET /api/v1/achievements
func (h *PlayerHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	p := h.progression.Snapshot()
	response.JSON(w, http.StatusOK, response.AchievementsFromModel(p.Achievements, achievement.Progress(p)))
}

// Settings handles GET /api/v1/settings
func (h *PlayerHandler) Settings(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.SettingsFromModel(h.progression.Snapshot().Settings))
}

// UpdateSettings handles PATCH /api/v1/settings
func (h *PlayerHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.SettingsRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	settings := h.progression.UpdateSettings(model.SettingsUpdate{
		SoundEnabled: req.SoundEnabled,
		HighContrast: req.HighContrast,
		LargeText:    req.LargeText,
	})
	response.JSON(w, http.StatusOK, response.SettingsFromModel(settings))
}

// ToggleSound handles POST /api/v1/settings/sound
func (h *PlayerHandler) ToggleSound(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.SoundToggled{SoundEnabled: h.progression.ToggleSound()})
}

// Reset handles POST /api/v1/reset
func (h *PlayerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	writeSaved(w, h.session.Reset(r.Context()))
}

// Save handles POST /api/v1/save
func (h *PlayerHandler) Save(w http.ResponseWriter, r *http.Request) {
	writeSaved(w, h.progression.ForceSave(r.Context()))
}

// writeSaved answers 503 when the record could not be written
func writeSaved(w http.ResponseWriter, saved bool) {
	status := http.StatusOK
	if !saved {
		status = http.StatusServiceUnavailable
	}
	response.JSON(w, status, response.Saved{Saved: saved})
}
