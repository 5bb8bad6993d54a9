package lookup

import (
	"errors"
	"fmt"
)

// ErrNotConfigured means no API key is available. The UI reacts by prompting
// for one; the engine never retries on its own.
var ErrNotConfigured = errors.New("API key not configured")

// InsufficientCreditsError is the distinguished paid-lookup failure. The
// message carries the remaining balance so the UI can show it verbatim.
type InsufficientCreditsError struct {
	Balance int
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: %d remaining", e.Balance)
}

// errorBody is the server's error envelope:
// {error: true, error_code?, message, balance?}
type errorBody struct {
	Error     bool   `json:"error"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Balance   *int   `json:"balance"`
}

const errCodeInsufficientCredits = "INSUFFICIENT_CREDITS"

// fallback when the server gives us nothing usable
const genericFailureMsg = "lookup failed, please try again"
