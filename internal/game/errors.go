// internal/game/errors.go
//
// Error taxonomy for room operations. Every failure is recoverable and is
// reported on the requester's acknowledgement channel only; nothing here
// is ever fatal to the process.

package game

// Error is a structured, code-carrying failure. The Code is a stable
// machine-readable identifier for clients; the Message mirrors the
// human-readable text the reference clients already display.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

var (
	ErrRoomNotFound       = &Error{Code: "room_not_found", Message: "Room not found"}
	ErrGameAlreadyStarted = &Error{Code: "game_already_started", Message: "Game already started"}
	ErrAlreadyStarted     = &Error{Code: "already_started", Message: "Already started"}
	ErrNotHost            = &Error{Code: "not_host", Message: "Only host can start"}
	ErrNotStarted         = &Error{Code: "not_started", Message: "Game not started"}
	ErrInvalidLength      = &Error{Code: "invalid_length", Message: "Invalid guess length"}
	ErrInvalidGuess       = &Error{Code: "invalid_guess", Message: "Guess must be letters only"}
	ErrInvalidWord        = &Error{Code: "invalid_word", Message: "Word must be letters only"}
	ErrNotAMember         = &Error{Code: "not_a_member", Message: "Not in room"}
	ErrBadRequest         = &Error{Code: "bad_request", Message: "Bad request"}
)
