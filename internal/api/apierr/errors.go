package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/pocketcasino/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidBet         = "INVALID_BET"
	CodeBetBelowMinimum    = "BET_BELOW_MINIMUM"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeUnknownGame        = "UNKNOWN_GAME"
	CodeInvalidName        = "INVALID_NAME"
	CodeNoActiveRound      = "NO_ACTIVE_ROUND"
	CodeRoundInProgress    = "ROUND_IN_PROGRESS"
	CodeRoundComplete      = "ROUND_COMPLETE"
	CodeInvalidRouletteBet = "INVALID_ROULETTE_BET"
	CodeInvalidDiceBet     = "INVALID_DICE_BET"
	CodeInvalidHold        = "INVALID_HOLD"
	CodeNotFound           = "NOT_FOUND"
	CodeForbidden          = "FORBIDDEN"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError. Rule violations carry
// the wrapped detail (minimums, balances) in the message.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidBet):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBet, err.Error()}}
	case errors.Is(err, model.ErrBetBelowMinimum):
		return &httpError{http.StatusBadRequest, APIError{CodeBetBelowMinimum, err.Error()}}
	case errors.Is(err, model.ErrInsufficientFunds):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientFunds, err.Error()}}
	case errors.Is(err, model.ErrUnknownGame):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownGame, err.Error()}}
	case errors.Is(err, model.ErrInvalidName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidName, "Leaderboard name must not be empty"}}
	case errors.Is(err, model.ErrNoActiveRound):
		return &httpError{http.StatusNotFound, APIError{CodeNoActiveRound, "No round in progress"}}
	case errors.Is(err, model.ErrRoundInProgress):
		return &httpError{http.StatusConflict, APIError{CodeRoundInProgress, "A round is already in progress"}}
	case errors.Is(err, model.ErrRoundComplete):
		return &httpError{http.StatusConflict, APIError{CodeRoundComplete, "Round is already complete"}}
	case errors.Is(err, model.ErrInvalidRouletteBet):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRouletteBet, err.Error()}}
	case errors.Is(err, model.ErrInvalidDiceBet):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDiceBet, err.Error()}}
	case errors.Is(err, model.ErrInvalidHold):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidHold, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(message string) error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, message}}
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
